package repositories

import (
	"context"
	"fmt"

	"github.com/drivingschool/admin/internal/app/models"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
)

// TeacherRepository reads and writes the backend's /teachers collection
type TeacherRepository struct {
	client *apiclient.Client
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(client *apiclient.Client) *TeacherRepository {
	return &TeacherRepository{client: client}
}

// List returns every teacher
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.client.Get(ctx, "/teachers", &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// Create persists a new teacher and returns the stored record
func (r *TeacherRepository) Create(ctx context.Context, teacher models.Teacher) (models.Teacher, error) {
	var created models.Teacher
	if err := r.client.Post(ctx, "/teachers", teacher, &created); err != nil {
		return models.Teacher{}, err
	}
	return created, nil
}

// Update replaces teacher id and returns the stored record
func (r *TeacherRepository) Update(ctx context.Context, id int64, teacher models.Teacher) (models.Teacher, error) {
	var updated models.Teacher
	if err := r.client.Put(ctx, fmt.Sprintf("/teachers/%d", id), teacher, &updated); err != nil {
		return models.Teacher{}, err
	}
	return updated, nil
}
