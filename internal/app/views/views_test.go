package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

func fileURL(base string) func(string) string {
	return apiclient.New(apiclient.Config{BaseURL: base}, nil).FileURL
}

func TestLoadParsesEveryPage(t *testing.T) {
	tmpl, err := Load(fileURL("http://localhost:3000"))
	require.NoError(t, err)

	for _, name := range []string{"enroll.html", "teachers.html", "students.html", "documents.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestDocumentLinksUseBackendBase(t *testing.T) {
	tmpl, err := Load(fileURL("http://localhost:3000/"))
	require.NoError(t, err)

	screen := &models.DocumentScreen{
		Students: []models.Student{{ID: 1, FirstName: "Hana"}},
		Documents: map[int64][]models.StudentDocument{
			1: {{ID: 10, StudentID: 1, File: &models.FileRef{Filename: "id.pdf", URL: "/uploads/id.pdf"}}},
		},
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "documents.html", map[string]interface{}{
		"Title":  "Documents",
		"Active": "documents",
		"Screen": screen,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `href="http://localhost:3000/uploads/id.pdf"`)
	assert.Contains(t, buf.String(), `action="/documents/1/files"`)
}

func TestFlashRendersOnce(t *testing.T) {
	tmpl, err := Load(fileURL("http://localhost:3000"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "teachers.html", map[string]interface{}{
		"Title":  "Teachers",
		"Active": "teachers",
		"Flash":  []models.Notification{models.Failure("Failed to add teacher.")},
		"Screen": &models.TeacherScreen{},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `class="flash error"`)
	assert.Contains(t, buf.String(), "Failed to add teacher.")
}

func TestTeacherRetryClearsOptions(t *testing.T) {
	tmpl, err := Load(fileURL("http://localhost:3000"))
	require.NoError(t, err)

	screen := &models.EnrollmentScreen{
		Teachers:      []models.Teacher{{ID: 1, FirstName: "Kebede"}},
		TeachersFetch: models.FetchState{Status: models.FetchFailed, Error: "Failed to load teacher data."},
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "enroll.html", map[string]interface{}{
		"Title":  "Enroll Student",
		"Active": "enroll",
		"Screen": screen,
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, `id="teachers-retry"`)
	clear := strings.Index(body, "select.remove(1)")
	appendOpt := strings.Index(body, "select.appendChild(opt)")
	require.NotEqual(t, -1, clear)
	assert.Less(t, clear, appendOpt)
}
