package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/app/services"
	"github.com/drivingschool/admin/internal/middleware"
)

const studentsPage = "students.html"

// StudentController serves the student table and the detail view
type StudentController struct {
	service *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(service *services.StudentService) *StudentController {
	return &StudentController{service: service}
}

// List mounts the student table
func (c *StudentController) List(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Students
	_ = c.service.Load(ctx.Request.Context(), screen)
	if gone(ctx) {
		return
	}
	c.render(ctx, http.StatusOK)
}

// Show opens the detail view from the already fetched list
func (c *StudentController) Show(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Students
	if screen.Fetch.Status != models.FetchReady {
		_ = c.service.Load(ctx.Request.Context(), screen)
		if gone(ctx) {
			return
		}
	}

	id, err := pathID(ctx, "id")
	if err == nil {
		err = screen.Select(id)
	}
	if err != nil {
		notify(ctx, models.Failure("Student not found."))
		c.render(ctx, http.StatusNotFound)
		return
	}
	c.render(ctx, http.StatusOK)
}

// Close clears the detail view
func (c *StudentController) Close(ctx *gin.Context) {
	middleware.SessionState(ctx).Students.Close()
	c.render(ctx, http.StatusOK)
}

func (c *StudentController) render(ctx *gin.Context, status int) {
	screen := &middleware.SessionState(ctx).Students
	data := gin.H{"Screen": screen}
	if st, ok := screen.Selected(); ok {
		data["Selected"] = st
	}
	page(ctx, status, studentsPage, "Students", "students", data)
}
