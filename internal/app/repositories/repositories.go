package repositories

import (
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

// Repositories holds all the backend resource repositories
type Repositories struct {
	TeacherRepository  *TeacherRepository
	StudentRepository  *StudentRepository
	DocumentRepository *DocumentRepository
}

// NewRepositories initializes all repositories on the shared API client
func NewRepositories(client *apiclient.Client) *Repositories {
	return &Repositories{
		TeacherRepository:  NewTeacherRepository(client),
		StudentRepository:  NewStudentRepository(client),
		DocumentRepository: NewDocumentRepository(client),
	}
}
