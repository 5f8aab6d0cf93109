package repositories

import (
	"context"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

// StudentRepository reads and writes the backend's /students collection
type StudentRepository struct {
	client *apiclient.Client
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(client *apiclient.Client) *StudentRepository {
	return &StudentRepository{client: client}
}

// List returns every student
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.client.Get(ctx, "/students", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Create enrolls a new student and returns the stored record
func (r *StudentRepository) Create(ctx context.Context, student models.Student) (models.Student, error) {
	var created models.Student
	if err := r.client.Post(ctx, "/students", student, &created); err != nil {
		return models.Student{}, err
	}
	return created, nil
}
