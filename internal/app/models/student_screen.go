package models

import (
	"fmt"
	"strconv"

	"github.com/drivingschool/admin/internal/pkg/apperrors"
)

// StudentScreen is the state of the student table and its detail view
type StudentScreen struct {
	Students   []Student  `json:"students"`
	Teachers   []Teacher  `json:"teachers"`
	Fetch      FetchState `json:"fetch"`
	SelectedID *int64     `json:"selected_id,omitempty"`
}

// Select opens the detail view for a student already in the list
func (s *StudentScreen) Select(id int64) error {
	if _, ok := s.find(id); !ok {
		return fmt.Errorf("%w: id %d", apperrors.ErrStudentNotFound, id)
	}
	s.SelectedID = &id
	return nil
}

// Close clears the selection
func (s *StudentScreen) Close() {
	s.SelectedID = nil
}

// Selected returns the selected student, if any
func (s *StudentScreen) Selected() (Student, bool) {
	if s.SelectedID == nil {
		return Student{}, false
	}
	return s.find(*s.SelectedID)
}

// TeacherName resolves a student's teacher reference for display.
// Unknown references fall back to the raw id.
func (s *StudentScreen) TeacherName(st Student) string {
	if st.TeacherID == nil {
		return ""
	}
	for _, t := range s.Teachers {
		if t.ID == *st.TeacherID {
			return t.FullName()
		}
	}
	return strconv.FormatInt(*st.TeacherID, 10)
}

func (s *StudentScreen) find(id int64) (Student, bool) {
	for _, st := range s.Students {
		if st.ID == id {
			return st, true
		}
	}
	return Student{}, false
}
