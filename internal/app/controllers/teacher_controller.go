package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/app/services"
	"github.com/drivingschool/admin/internal/middleware"
)

const teachersPage = "teachers.html"

// TeacherController serves the teacher table and its editor
type TeacherController struct {
	service *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(service *services.TeacherService) *TeacherController {
	return &TeacherController{service: service}
}

// List mounts the teacher table
func (c *TeacherController) List(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Teachers
	_ = c.service.Load(ctx.Request.Context(), screen)
	if gone(ctx) {
		return
	}
	c.render(ctx, http.StatusOK)
}

// New opens the editor with an empty draft
func (c *TeacherController) New(ctx *gin.Context) {
	screen := c.ensureLoaded(ctx)
	if gone(ctx) {
		return
	}
	screen.OpenAdd()
	c.render(ctx, http.StatusOK)
}

// Edit opens the editor for a listed teacher; clicking a row lands here too
func (c *TeacherController) Edit(ctx *gin.Context) {
	screen := c.ensureLoaded(ctx)
	if gone(ctx) {
		return
	}

	id, err := pathID(ctx, "id")
	if err == nil {
		err = screen.OpenEdit(id)
	}
	if err != nil {
		notify(ctx, models.Failure("Teacher not found."))
		c.render(ctx, http.StatusNotFound)
		return
	}
	c.render(ctx, http.StatusOK)
}

// Save posts the editor's draft to the backend
func (c *TeacherController) Save(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Teachers

	var form dto.TeacherForm
	if err := ctx.ShouldBind(&form); err != nil {
		notify(ctx, models.Failure("Invalid form submission."))
		c.render(ctx, http.StatusBadRequest)
		return
	}

	if screen.IsOpen() {
		for name, value := range form.Fields() {
			if err := screen.SetField(name, value); err != nil {
				notify(ctx, models.Failure(err.Error()))
				c.render(ctx, statusFor(err))
				return
			}
		}
	}

	n, err := c.service.Save(ctx.Request.Context(), screen)
	if gone(ctx) {
		return
	}
	notify(ctx, n)
	c.render(ctx, statusFor(err))
}

// Close discards the editor
func (c *TeacherController) Close(ctx *gin.Context) {
	middleware.SessionState(ctx).Teachers.Close()
	c.render(ctx, http.StatusOK)
}

func (c *TeacherController) ensureLoaded(ctx *gin.Context) *models.TeacherScreen {
	screen := &middleware.SessionState(ctx).Teachers
	if screen.Fetch.Status != models.FetchReady {
		_ = c.service.Load(ctx.Request.Context(), screen)
	}
	return screen
}

func (c *TeacherController) render(ctx *gin.Context, status int) {
	page(ctx, status, teachersPage, "Teachers", "teachers", gin.H{
		"Screen": &middleware.SessionState(ctx).Teachers,
	})
}
