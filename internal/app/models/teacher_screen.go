package models

import (
	"fmt"

	"github.com/drivingschool/admin/internal/pkg/apperrors"
)

// EditorMode tells whether the teacher editor is closed, adding or editing
type EditorMode string

const (
	EditorClosed EditorMode = ""
	EditorAdd    EditorMode = "add"
	EditorEdit   EditorMode = "edit"
)

// TeacherEditor is the single add/edit modal of the teacher screen
type TeacherEditor struct {
	Mode      EditorMode `json:"mode"`
	EditingID int64      `json:"editing_id,omitempty"`
	Draft     Teacher    `json:"draft"`
}

// TeacherScreen is the state of the teacher table and its editor
type TeacherScreen struct {
	Teachers []Teacher     `json:"teachers"`
	Fetch    FetchState    `json:"fetch"`
	Editor   TeacherEditor `json:"editor"`
}

// IsOpen reports whether the editor is showing
func (s *TeacherScreen) IsOpen() bool {
	return s.Editor.Mode != EditorClosed
}

// OpenAdd opens the editor with an empty draft, replacing any open editor
func (s *TeacherScreen) OpenAdd() {
	s.Editor = TeacherEditor{Mode: EditorAdd}
}

// OpenEdit opens the editor pre-filled with the listed teacher
func (s *TeacherScreen) OpenEdit(id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", apperrors.ErrTeacherNotFound, id)
	}
	s.Editor = TeacherEditor{Mode: EditorEdit, EditingID: id, Draft: s.Teachers[idx]}
	return nil
}

// Close discards the editor
func (s *TeacherScreen) Close() {
	s.Editor = TeacherEditor{}
}

// SetField stores one editor value in the draft
func (s *TeacherScreen) SetField(name, value string) error {
	d := &s.Editor.Draft
	switch name {
	case "first_name":
		d.FirstName = value
	case "last_name":
		d.LastName = value
	case "phone":
		d.Phone = value
	case "blood_type":
		d.BloodType = value
	case "category":
		d.Category = value
	case "branch":
		d.Branch = value
	case "plate_no":
		d.PlateNo = value
	case "status":
		d.Status = value
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrBadRequest, name)
	}
	return nil
}

// ApplySaved merges the backend's copy of a saved teacher into the list and closes the editor.
// Editing replaces the row being edited; adding appends one row.
func (s *TeacherScreen) ApplySaved(saved Teacher) {
	if s.Editor.Mode == EditorEdit {
		if idx := s.indexOf(s.Editor.EditingID); idx >= 0 {
			s.Teachers[idx] = saved
		}
	} else {
		s.Teachers = append(s.Teachers, saved)
	}
	s.Close()
}

func (s *TeacherScreen) indexOf(id int64) int {
	for i, t := range s.Teachers {
		if t.ID == id {
			return i
		}
	}
	return -1
}
