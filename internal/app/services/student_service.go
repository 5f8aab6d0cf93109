package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/logger"
)

const msgStudentsLoadFailed = "Failed to load students."

// StudentService drives the student table
type StudentService struct {
	students StudentStore
	teachers TeacherStore
	logger   zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, teachers TeacherStore) *StudentService {
	return &StudentService{
		students: students,
		teachers: teachers,
		logger:   logger.Component("students"),
	}
}

// Load fetches every student. The teacher list is fetched as well so rows can show
// teacher names; losing it only degrades the column to raw ids.
func (s *StudentService) Load(ctx context.Context, screen *models.StudentScreen) error {
	screen.Fetch.Start()
	students, err := s.students.List(ctx)
	if abandoned(ctx) {
		return ctx.Err()
	}
	if err != nil {
		logRequestError(s.logger, err, "Error fetching students")
		screen.Fetch.Fail(apperrors.UserMessage(err, msgStudentsLoadFailed))
		return err
	}

	teachers, err := s.teachers.List(ctx)
	if err != nil {
		logRequestError(s.logger, err, "Error fetching teachers for student table")
		teachers = nil
	}
	if abandoned(ctx) {
		return ctx.Err()
	}

	screen.Students = students
	screen.Teachers = teachers
	screen.Fetch.Succeed()
	if screen.SelectedID != nil {
		if _, ok := screen.Selected(); !ok {
			screen.Close()
		}
	}
	return nil
}
