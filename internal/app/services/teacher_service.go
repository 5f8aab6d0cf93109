package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/logger"
)

const (
	msgTeacherUpdated      = "Teacher information updated successfully!"
	msgTeacherUpdateFailed = "Failed to update teacher information."
	msgTeacherAdded        = "Teacher added successfully!"
	msgTeacherAddFailed    = "Failed to add teacher."
	msgTeachersLoadFailed  = "Failed to load teachers."
)

// TeacherService drives the teacher table and editor
type TeacherService struct {
	store  TeacherStore
	logger zerolog.Logger
}

// NewTeacherService creates a new teacher service
func NewTeacherService(store TeacherStore) *TeacherService {
	return &TeacherService{
		store:  store,
		logger: logger.Component("teachers"),
	}
}

// Load fetches the full teacher list into the screen
func (s *TeacherService) Load(ctx context.Context, screen *models.TeacherScreen) error {
	screen.Fetch.Start()
	teachers, err := s.store.List(ctx)
	if abandoned(ctx) {
		return ctx.Err()
	}
	if err != nil {
		logRequestError(s.logger, err, "Error fetching teachers")
		screen.Fetch.Fail(apperrors.UserMessage(err, msgTeachersLoadFailed))
		return err
	}
	screen.Teachers = teachers
	screen.Fetch.Succeed()
	return nil
}

// Save creates or updates the teacher in the open editor.
// On failure the editor stays open with its draft.
func (s *TeacherService) Save(ctx context.Context, screen *models.TeacherScreen) (models.Notification, error) {
	if !screen.IsOpen() {
		return models.Failure(msgTeacherAddFailed), apperrors.ErrEditorClosed
	}

	editing := screen.Editor.Mode == models.EditorEdit
	var (
		saved models.Teacher
		err   error
	)
	if editing {
		saved, err = s.store.Update(ctx, screen.Editor.EditingID, screen.Editor.Draft)
	} else {
		saved, err = s.store.Create(ctx, screen.Editor.Draft)
	}

	if err != nil {
		if editing {
			logRequestError(s.logger, err, "Error updating teacher")
			return models.Failure(msgTeacherUpdateFailed), err
		}
		logRequestError(s.logger, err, "Error adding teacher")
		return models.Failure(msgTeacherAddFailed), err
	}
	if abandoned(ctx) {
		return models.Notification{}, ctx.Err()
	}

	screen.ApplySaved(saved)
	if editing {
		s.logger.Info().Int64("teacherId", saved.ID).Msg("Teacher updated")
		return models.Success(msgTeacherUpdated), nil
	}
	s.logger.Info().Int64("teacherId", saved.ID).Msg("Teacher added")
	return models.Success(msgTeacherAdded), nil
}
