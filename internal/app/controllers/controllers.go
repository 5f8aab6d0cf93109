package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/middleware"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
)

// page renders a full HTML page with the session's pending notifications
func page(ctx *gin.Context, status int, name, title, active string, data gin.H) {
	state := middleware.SessionState(ctx)
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Active"] = active
	data["Flash"] = state.TakeFlash()
	ctx.HTML(status, name, data)
}

// notify queues n for the next rendered page
func notify(ctx *gin.Context, n models.Notification) {
	if n.Message == "" {
		return
	}
	middleware.SessionState(ctx).Notify(n)
}

// statusFor picks the HTTP status of a page rendered after a failed action
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrNoFiles, apperrors.ErrBadRequest, apperrors.ErrEditorClosed):
		return http.StatusUnprocessableEntity
	case apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrTeacherNotFound, apperrors.ErrNoStudentDocument):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrServerRejected):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrNoResponse):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// gone reports whether the client disconnected; nothing is rendered then
func gone(ctx *gin.Context) bool {
	return ctx.Request.Context().Err() != nil
}

func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid "+name)
	}
	return id, nil
}
