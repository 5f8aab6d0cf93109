package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/app/services"
	"github.com/drivingschool/admin/internal/middleware"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
)

const enrollPage = "enroll.html"

// EnrollmentController serves the student enrollment form
type EnrollmentController struct {
	service *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(service *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{service: service}
}

// Show mounts the form and loads the teacher select
func (c *EnrollmentController) Show(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Enrollment
	if n := c.service.Mount(ctx.Request.Context(), screen); n != nil {
		notify(ctx, *n)
	}
	if gone(ctx) {
		return
	}
	c.render(ctx, http.StatusOK)
}

// Submit stores the posted fields in the draft and enrolls the student
func (c *EnrollmentController) Submit(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Enrollment

	var form dto.EnrollmentForm
	if err := ctx.ShouldBind(&form); err != nil {
		notify(ctx, models.Failure("Invalid form submission."))
		c.render(ctx, http.StatusBadRequest)
		return
	}

	if err := c.service.ApplyForm(screen, form.Fields()); err != nil {
		msg := "Invalid form submission."
		var fieldErr *apperrors.CustomError
		if errors.As(err, &fieldErr) {
			msg = fieldErr.Message
		}
		notify(ctx, models.Failure(msg))
		c.render(ctx, statusFor(err))
		return
	}

	n, err := c.service.Submit(ctx.Request.Context(), screen)
	if gone(ctx) {
		return
	}
	notify(ctx, n)
	c.render(ctx, statusFor(err))
}

// CheckDOB validates a date of birth as soon as the field changes
func (c *EnrollmentController) CheckDOB(ctx *gin.Context) {
	var req dto.DOBCheckRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	screen := &middleware.SessionState(ctx).Enrollment
	resp := dto.DOBCheckResponse{DOB: req.DOB}
	if age, ok := c.service.CheckDOB(screen, req.DOB); ok {
		resp.Age = &age
	}
	resp.Error = screen.DOBError
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// TeacherOptions returns the teacher select options as JSON so the form can retry a failed load
func (c *EnrollmentController) TeacherOptions(ctx *gin.Context) {
	screen := &middleware.SessionState(ctx).Enrollment
	if err := c.service.ReloadTeachers(ctx.Request.Context(), screen); err != nil {
		if gone(ctx) {
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	options := make([]dto.TeacherOption, 0, len(screen.Teachers))
	for _, t := range screen.Teachers {
		options = append(options, dto.TeacherOption{ID: t.ID, Name: t.FullName()})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(options))
}

func (c *EnrollmentController) render(ctx *gin.Context, status int) {
	page(ctx, status, enrollPage, "Enroll Student", "enroll", gin.H{
		"Screen": &middleware.SessionState(ctx).Enrollment,
	})
}
