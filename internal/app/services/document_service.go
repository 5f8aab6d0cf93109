package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/logger"
)

const (
	msgDocumentsLoadFailed = "Failed to load student documents."
	msgNoDocumentRecord    = "No document record exists for this student."
	msgNoFilesSelected     = "Select at least one file to upload."
	msgUploadFailed        = "Failed to upload documents."
)

// DocumentService drives the student document manager
type DocumentService struct {
	students StudentStore
	docs     DocumentStore
	logger   zerolog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(students StudentStore, docs DocumentStore) *DocumentService {
	return &DocumentService{
		students: students,
		docs:     docs,
		logger:   logger.Component("documents"),
	}
}

// Load fetches all students, then all documents grouped by student
func (s *DocumentService) Load(ctx context.Context, screen *models.DocumentScreen) error {
	screen.Fetch.Start()
	students, err := s.students.List(ctx)
	if err == nil && !abandoned(ctx) {
		var docs []models.StudentDocument
		docs, err = s.docs.ListAll(ctx)
		if err == nil {
			screen.Students = students
			screen.Documents = models.GroupByStudent(docs)
		}
	}
	if abandoned(ctx) {
		return ctx.Err()
	}
	if err != nil {
		logRequestError(s.logger, err, "There was an error fetching the data")
		screen.Fetch.Fail(apperrors.UserMessage(err, msgDocumentsLoadFailed))
		return err
	}
	screen.Fetch.Succeed()
	return nil
}

// Upload attaches files to the student's document record.
// Without a document record nothing is uploaded and the local list is untouched.
func (s *DocumentService) Upload(ctx context.Context, screen *models.DocumentScreen, studentID int64, files []apiclient.FilePart) (models.Notification, error) {
	if len(files) == 0 {
		return models.Failure(msgNoFilesSelected), apperrors.ErrNoFiles
	}

	docs, err := s.docs.ListForStudent(ctx, studentID)
	if err != nil {
		logRequestError(s.logger, err, "Error looking up student document")
		return models.Failure(apperrors.UserMessage(err, msgUploadFailed)), err
	}

	doc, ok := models.FirstDocument(docs)
	if !ok {
		s.logger.Error().Int64("studentId", studentID).Msg("No student document found for the student")
		return models.Failure(msgNoDocumentRecord), fmt.Errorf("%w: student %d", apperrors.ErrNoStudentDocument, studentID)
	}

	created, err := s.docs.UploadFiles(ctx, studentID, doc.ID, files)
	if err != nil {
		logRequestError(s.logger, err, "Error uploading document")
		return models.Failure(apperrors.UserMessage(err, msgUploadFailed)), err
	}
	if abandoned(ctx) {
		return models.Notification{}, ctx.Err()
	}

	screen.AppendFiles(studentID, created)
	s.logger.Info().Int64("studentId", studentID).Int64("documentId", doc.ID).Int("files", len(created)).Msg("Documents uploaded")
	return models.Success(fmt.Sprintf("Uploaded %d file(s).", len(created))), nil
}
