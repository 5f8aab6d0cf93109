// Package session keeps each browser session's screen state between requests.
package session

import (
	"context"
	"errors"

	"github.com/drivingschool/admin/internal/app/models"
)

// ErrNotFound is returned when no state is stored for a session id
var ErrNotFound = errors.New("session not found")

// State is everything one browser session remembers between requests
type State struct {
	Enrollment models.EnrollmentScreen `json:"enrollment"`
	Teachers   models.TeacherScreen    `json:"teachers"`
	Students   models.StudentScreen    `json:"students"`
	Documents  models.DocumentScreen   `json:"documents"`
	Flash      []models.Notification   `json:"flash,omitempty"`
}

// Notify queues a notification for the next rendered page
func (s *State) Notify(n models.Notification) {
	s.Flash = append(s.Flash, n)
}

// TakeFlash returns the queued notifications and clears them
func (s *State) TakeFlash() []models.Notification {
	flash := s.Flash
	s.Flash = nil
	return flash
}

// Store loads and saves session state by id.
// Concurrent saves for one id are last-write-wins.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, id string, state *State) error
	Delete(ctx context.Context, id string) error
	Close() error
}
