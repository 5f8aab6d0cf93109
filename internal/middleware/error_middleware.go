package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/session"
)

// HandleAPIError maps an error to a JSON error envelope
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	var customErr *apperrors.CustomError
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if errors.As(err, &customErr) {
			detail.Message = customErr.Message
			detail.WithField(customErr.Field)
			if customErr.Details != nil {
				detail.WithDetails(customErr.Details)
			}
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound, apperrors.ErrTeacherNotFound,
		apperrors.ErrNoStudentDocument, session.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrNoFiles, apperrors.ErrEditorClosed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())))
	case errors.Is(err, apperrors.ErrServerRejected):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBackendRejected, apperrors.UserMessage(err, "Request rejected by the server."))))
	case errors.Is(err, apperrors.ErrNoResponse):
		c.JSON(http.StatusGatewayTimeout, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeBackendUnavailable, apperrors.MsgNoResponse)))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
