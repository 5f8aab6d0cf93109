package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
)

// Screen services defined in this package:
// - EnrollmentService: student enrollment form
// - TeacherService: teacher table and its add/edit editor
// - StudentService: student table and detail view
// - DocumentService: student document manager and file uploads

// TeacherStore is the backend access the teacher screens need
type TeacherStore interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Create(ctx context.Context, teacher models.Teacher) (models.Teacher, error)
	Update(ctx context.Context, id int64, teacher models.Teacher) (models.Teacher, error)
}

// StudentStore is the backend access the student screens need
type StudentStore interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student models.Student) (models.Student, error)
}

// DocumentStore is the backend access the document manager needs
type DocumentStore interface {
	ListAll(ctx context.Context) ([]models.StudentDocument, error)
	ListForStudent(ctx context.Context, studentID int64) ([]models.StudentDocument, error)
	UploadFiles(ctx context.Context, studentID, documentID int64, files []apiclient.FilePart) ([]models.StudentFile, error)
}

// logRequestError logs a failed backend call with its failure class
func logRequestError(lgr zerolog.Logger, err error, msg string) {
	var reqErr *apperrors.RequestError
	switch {
	case errors.As(err, &reqErr) && reqErr.Kind == apperrors.ErrServerRejected:
		lgr.Error().Err(err).Int("status", reqErr.StatusCode).Str("serverMessage", reqErr.Message).Msg(msg + ": error response from server")
	case errors.Is(err, apperrors.ErrNoResponse):
		lgr.Error().Err(err).Msg(msg + ": no response received")
	default:
		lgr.Error().Err(err).Msg(msg + ": unexpected error")
	}
}

// abandoned reports whether the caller went away, in which case results are not applied
func abandoned(ctx context.Context) bool {
	return ctx.Err() != nil
}
