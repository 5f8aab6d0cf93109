package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/helpers"
)

// Rule tags available on form structs
const (
	TagCategory  = "drivecategory"
	TagEducation = "education"
	TagStatus    = "studentstatus"
	TagBranch    = "branch"
	TagBloodType = "bloodtype"
	TagISODate   = "isodate"
)

var rules = map[string]func(string) bool{
	TagCategory:  models.IsCategory,
	TagEducation: models.IsEducationLevel,
	TagStatus:    models.IsStatus,
	TagBranch:    models.IsBranch,
	TagBloodType: models.IsBloodType,
	TagISODate: func(v string) bool {
		_, err := helpers.ParseDate(v)
		return err == nil
	},
}

// Register adds the school's enum and date rules to v
func Register(v *validator.Validate) error {
	for tag, check := range rules {
		check := check
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register rule %s: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator with the school rules registered.
// Field errors are reported under the JSON name so they match the form inputs.
func New() *validator.Validate {
	v := validator.New()
	if err := Configure(v); err != nil {
		panic(err)
	}
	return v
}

// Configure prepares an existing validator, such as gin's binding engine
func Configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return Register(v)
}

// FieldErrors flattens a validation failure into field -> message
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = Message(fe)
	}
	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Message creates a human-readable validation error message
func Message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case TagCategory:
		return e.Field() + " must be a known licence category"
	case TagEducation:
		return e.Field() + " must be a known education level"
	case TagStatus:
		return e.Field() + " must be Practice, Theory or Done"
	case TagBranch:
		return e.Field() + " must be a known branch"
	case TagBloodType:
		return e.Field() + " must be a valid blood type"
	case TagISODate:
		return e.Field() + " must be a date in YYYY-MM-DD format"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
