package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/pkg/validation"
)

// RegisterValidators installs the custom rules on gin's binding validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return validation.Configure(v)
}

// BindJSON binds and validates a JSON body.
// On failure it writes a validation error response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		fields := validation.FieldErrors(err)
		switch len(fields) {
		case 0:
			detail.WithDetails(err.Error())
		case 1:
			for field, msg := range fields {
				detail.Message = msg
				detail.WithField(field)
			}
		default:
			detail.Message = "Validation failed"
			detail.WithDetails(fields)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}
