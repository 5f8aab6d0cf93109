package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/helpers"
	"github.com/drivingschool/admin/internal/pkg/logger"
	"github.com/drivingschool/admin/internal/pkg/validation"
)

const (
	msgEnrolled          = "Student successfully enrolled!"
	msgEnrollFallback    = "Failed to enroll student."
	msgTeachersLoadError = "Failed to load teacher data."
	msgFixFields         = "Please correct the highlighted fields."
)

// EnrollmentService drives the student enrollment form
type EnrollmentService struct {
	teachers TeacherStore
	students StudentStore
	validate *validator.Validate
	now      func() time.Time
	logger   zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service. A nil clock uses time.Now.
func NewEnrollmentService(teachers TeacherStore, students StudentStore, validate *validator.Validate, now func() time.Time) *EnrollmentService {
	if now == nil {
		now = time.Now
	}
	return &EnrollmentService{
		teachers: teachers,
		students: students,
		validate: validate,
		now:      now,
		logger:   logger.Component("enrollment"),
	}
}

// Mount loads the teacher list for the teacher select.
// A failure leaves the form usable and returns the notification to show.
func (s *EnrollmentService) Mount(ctx context.Context, screen *models.EnrollmentScreen) *models.Notification {
	if err := s.ReloadTeachers(ctx, screen); err != nil && !abandoned(ctx) {
		n := models.Failure(msgTeachersLoadError)
		return &n
	}
	return nil
}

// ReloadTeachers refreshes the teacher select options
func (s *EnrollmentService) ReloadTeachers(ctx context.Context, screen *models.EnrollmentScreen) error {
	screen.TeachersFetch.Start()
	teachers, err := s.teachers.List(ctx)
	if abandoned(ctx) {
		return ctx.Err()
	}
	if err != nil {
		logRequestError(s.logger, err, "Error fetching teachers")
		screen.TeachersFetch.Fail(msgTeachersLoadError)
		return err
	}
	screen.Teachers = teachers
	screen.TeachersFetch.Succeed()
	return nil
}

// SetField updates one draft field; a DOB change re-runs the age check
func (s *EnrollmentService) SetField(screen *models.EnrollmentScreen, name, value string) error {
	return screen.SetField(name, value, s.now())
}

// CheckDOB updates the draft's date of birth and returns the computed age.
// ok is false when the value is not a valid date.
func (s *EnrollmentService) CheckDOB(screen *models.EnrollmentScreen, value string) (age int, ok bool) {
	_ = s.SetField(screen, "dob", value)
	birth, err := helpers.ParseDate(value)
	if err != nil {
		return 0, false
	}
	return helpers.CalculateAge(birth, s.now()), true
}

// ApplyForm copies the posted fields into the draft in form order.
// Every valid field is applied; a field that cannot be parsed keeps its previous
// value and is reported in FieldErrors. Unknown fields reject the whole form.
func (s *EnrollmentService) ApplyForm(screen *models.EnrollmentScreen, fields map[string]string) error {
	for name := range fields {
		if !slices.Contains(models.StudentFormFields, name) {
			return fmt.Errorf("%w: unknown field %q", apperrors.ErrBadRequest, name)
		}
	}

	screen.FieldErrors = nil
	var errs []error
	for _, name := range models.StudentFormFields {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := s.SetField(screen, name, value); err != nil {
			var fieldErr *apperrors.CustomError
			if errors.As(err, &fieldErr) && fieldErr.Field != "" {
				if screen.FieldErrors == nil {
					screen.FieldErrors = make(map[string]string)
				}
				screen.FieldErrors[fieldErr.Field] = fieldErr.Message
			}
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Submit sends the draft as a new student.
// An outstanding DOB error or invalid enum value blocks the request.
func (s *EnrollmentService) Submit(ctx context.Context, screen *models.EnrollmentScreen) (models.Notification, error) {
	screen.FieldErrors = nil
	if screen.Blocked() {
		return models.Failure(screen.DOBError), apperrors.NewFieldError("dob", screen.DOBError)
	}

	if err := s.validate.Struct(screen.Draft); err != nil {
		screen.FieldErrors = validation.FieldErrors(err)
		return models.Failure(msgFixFields), fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	s.logger.Debug().Interface("student", screen.Draft).Msg("Submitting enrollment")
	created, err := s.students.Create(ctx, screen.Draft)
	if err != nil {
		logRequestError(s.logger, err, "Error enrolling student")
		return models.Failure(apperrors.UserMessage(err, msgEnrollFallback)), err
	}

	s.logger.Info().Int64("studentId", created.ID).Msg("Student enrolled")
	screen.Reset()
	return models.Success(msgEnrolled), nil
}
