package repositories

import (
	"context"
	"fmt"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

// StudentFileField is the multipart field the backend reads uploaded files from
const StudentFileField = "student_file[file]"

// DocumentRepository covers student documents and their uploaded files
type DocumentRepository struct {
	client *apiclient.Client
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(client *apiclient.Client) *DocumentRepository {
	return &DocumentRepository{client: client}
}

// ListAll returns the document records of every student
func (r *DocumentRepository) ListAll(ctx context.Context) ([]models.StudentDocument, error) {
	var docs []models.StudentDocument
	if err := r.client.Get(ctx, "/student_documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListForStudent returns the document records of one student
func (r *DocumentRepository) ListForStudent(ctx context.Context, studentID int64) ([]models.StudentDocument, error) {
	var docs []models.StudentDocument
	if err := r.client.Get(ctx, fmt.Sprintf("/students/%d/student_documents", studentID), &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadFiles attaches files to a document record in one multipart request
func (r *DocumentRepository) UploadFiles(ctx context.Context, studentID, documentID int64, files []apiclient.FilePart) ([]models.StudentFile, error) {
	path := fmt.Sprintf("/students/%d/student_documents/%d/student_files", studentID, documentID)
	var created []models.StudentFile
	if err := r.client.PostMultipart(ctx, path, StudentFileField, files, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// FileURL turns a file's stored path into a link on the backend
func (r *DocumentRepository) FileURL(path string) string {
	return r.client.FileURL(path)
}
