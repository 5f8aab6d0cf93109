// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/drivingschool/admin/internal/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load parses the embedded page templates.
// fileURL turns a file path returned by the backend into a link.
func Load(fileURL func(path string) string) (*template.Template, error) {
	return template.New("").Funcs(Funcs(fileURL)).ParseFS(templateFS, "templates/*.html")
}

// Funcs returns the helpers available to every page
func Funcs(fileURL func(path string) string) template.FuncMap {
	return template.FuncMap{
		"fileURL": fileURL,
		"idString": func(id *int64) string {
			if id == nil {
				return ""
			}
			return strconv.FormatInt(*id, 10)
		},
		"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
			if len(pairs)%2 != 0 {
				return nil, fmt.Errorf("dict needs key/value pairs, got %d args", len(pairs))
			}
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}
			return m, nil
		},
		"categories": func() []models.Category { return models.Categories },
		"educations": func() []models.EducationLevel { return models.EducationLevels },
		"statuses":   func() []models.StudentStatus { return models.Statuses },
		"branches":   func() []models.Branch { return models.Branches },
		"bloodTypes": func() []models.BloodType { return models.BloodTypes },
		"isLoading":  func(f models.FetchState) bool { return f.Status == models.FetchLoading },
		"isFailed":   func(f models.FetchState) bool { return f.Failed() },
	}
}
