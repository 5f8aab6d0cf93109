// Package testutil provides an in-memory stand-in for the school REST backend.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

// Route keys used by FailWith and Calls
const (
	RouteListTeachers       = "GET /teachers"
	RouteCreateTeacher      = "POST /teachers"
	RouteUpdateTeacher      = "PUT /teachers/:id"
	RouteListStudents       = "GET /students"
	RouteCreateStudent      = "POST /students"
	RouteListDocuments      = "GET /student_documents"
	RouteStudentDocuments   = "GET /students/:studentId/student_documents"
	RouteUploadStudentFiles = "POST /students/:studentId/student_documents/:docId/student_files"
)

type failure struct {
	status  int
	message string
}

// Backend is a fake of the school REST API backed by slices
type Backend struct {
	mu        sync.Mutex
	teachers  []models.Teacher
	students  []models.Student
	documents []models.StudentDocument
	files     []models.StudentFile
	nextID    int64
	calls     map[string]int
	failures  map[string]failure

	Server *httptest.Server
}

// NewBackend starts the fake and stops it when the test ends
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		nextID:   1000,
		calls:    make(map[string]int),
		failures: make(map[string]failure),
	}

	r := gin.New()
	r.Use(b.track)
	r.GET("/teachers", b.listTeachers)
	r.POST("/teachers", b.createTeacher)
	r.PUT("/teachers/:id", b.updateTeacher)
	r.GET("/students", b.listStudents)
	r.POST("/students", b.createStudent)
	r.GET("/student_documents", b.listDocuments)
	r.GET("/students/:studentId/student_documents", b.studentDocuments)
	r.POST("/students/:studentId/student_documents/:docId/student_files", b.uploadFiles)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// Client returns an API client pointed at the fake
func (b *Backend) Client() *apiclient.Client {
	return apiclient.New(apiclient.Config{BaseURL: b.Server.URL, Timeout: 2 * time.Second}, nil)
}

// SeedTeachers replaces the teacher collection
func (b *Backend) SeedTeachers(teachers ...models.Teacher) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.teachers = append([]models.Teacher(nil), teachers...)
}

// SeedStudents replaces the student collection
func (b *Backend) SeedStudents(students ...models.Student) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.students = append([]models.Student(nil), students...)
}

// SeedDocuments replaces the document collection
func (b *Backend) SeedDocuments(docs ...models.StudentDocument) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.documents = append([]models.StudentDocument(nil), docs...)
}

// FailWith makes route answer with status and a {"message": ...} body
func (b *Backend) FailWith(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = failure{status: status, message: message}
}

// Calls reports how many requests hit route
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// Students returns a copy of the stored students
func (b *Backend) Students() []models.Student {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Student(nil), b.students...)
}

// Files returns a copy of the uploaded files
func (b *Backend) Files() []models.StudentFile {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.StudentFile(nil), b.files...)
}

func (b *Backend) track(c *gin.Context) {
	key := c.Request.Method + " " + c.FullPath()
	b.mu.Lock()
	b.calls[key]++
	f, failing := b.failures[key]
	b.mu.Unlock()

	if failing {
		if f.message == "" {
			c.AbortWithStatus(f.status)
			return
		}
		c.AbortWithStatusJSON(f.status, gin.H{"message": f.message})
		return
	}
	c.Next()
}

func (b *Backend) id() int64 {
	b.nextID++
	return b.nextID
}

func (b *Backend) listTeachers(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, append([]models.Teacher{}, b.teachers...))
}

func (b *Backend) createTeacher(c *gin.Context) {
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	t.ID = b.id()
	b.teachers = append(b.teachers, t)
	c.JSON(http.StatusCreated, t)
}

func (b *Backend) updateTeacher(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	var t models.Teacher
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.teachers {
		if b.teachers[i].ID == id {
			t.ID = id
			b.teachers[i] = t
			c.JSON(http.StatusOK, t)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Teacher not found"})
}

func (b *Backend) listStudents(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, append([]models.Student{}, b.students...))
}

func (b *Backend) createStudent(c *gin.Context) {
	var s models.Student
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s.ID = b.id()
	b.students = append(b.students, s)
	c.JSON(http.StatusCreated, s)
}

func (b *Backend) listDocuments(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, append([]models.StudentDocument{}, b.documents...))
}

func (b *Backend) studentDocuments(c *gin.Context) {
	studentID, _ := strconv.ParseInt(c.Param("studentId"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()
	docs := []models.StudentDocument{}
	for _, d := range b.documents {
		if d.StudentID == studentID {
			docs = append(docs, d)
		}
	}
	c.JSON(http.StatusOK, docs)
}

func (b *Backend) uploadFiles(c *gin.Context) {
	docID, _ := strconv.ParseInt(c.Param("docId"), 10, 64)
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "multipart form required"})
		return
	}
	headers := form.File["student_file[file]"]
	if len(headers) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "File can't be blank"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	created := make([]models.StudentFile, 0, len(headers))
	for _, h := range headers {
		f := models.StudentFile{
			ID:                b.id(),
			StudentDocumentID: docID,
			File:              models.FileRef{Filename: h.Filename, URL: "/uploads/" + h.Filename},
		}
		b.files = append(b.files, f)
		created = append(created, f)
	}
	c.JSON(http.StatusCreated, created)
}
