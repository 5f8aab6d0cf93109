package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// applyEnvOverrides copies every set `env`-tagged variable onto cfg.
// All malformed values are reported together.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	walkEnvFields(reflect.ValueOf(cfg).Elem(), "", func(path, name string, field reflect.Value) {
		raw, ok := os.LookupEnv(name)
		if !ok {
			return
		}
		if err := parseInto(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s=%q): %w", path, name, raw, err))
		}
	})
	return errors.Join(errs...)
}

// walkEnvFields visits each tagged leaf field of a config section, depth first
func walkEnvFields(section reflect.Value, prefix string, visit func(path, name string, field reflect.Value)) {
	typ := section.Type()
	for i := 0; i < section.NumField(); i++ {
		field, meta := section.Field(i), typ.Field(i)
		path := prefix + meta.Name

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			walkEnvFields(field, path+".", visit)
			continue
		}
		if name := meta.Tag.Get("env"); name != "" && field.CanSet() {
			visit(path, name, field)
		}
	}
}

func parseInto(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return errors.New("not a duration")
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return errors.New("not an integer")
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("not a boolean")
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
