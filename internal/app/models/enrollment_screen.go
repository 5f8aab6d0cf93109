package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/drivingschool/admin/internal/pkg/helpers"
)

// MinimumEnrollmentAge is the youngest age accepted by the enrollment form
const MinimumEnrollmentAge = 18

const (
	MsgUnderage    = "Student must be at least 18 years old."
	MsgInvalidDate = "Date of birth must be a valid date."
)

// EnrollmentScreen is the state of the student enrollment form
type EnrollmentScreen struct {
	Draft    Student `json:"draft"`
	DOBError string  `json:"dob_error,omitempty"`
	// FieldErrors holds the messages of the last rejected submission, keyed by field
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	Teachers      []Teacher         `json:"teachers"`
	TeachersFetch FetchState        `json:"teachers_fetch"`
}

// StudentFormFields lists the enrollment form inputs in the order they are applied
var StudentFormFields = []string{
	"first_name", "last_name", "government_id", "dob", "category", "previousLicense",
	"city", "subcity", "education", "phone", "start_date", "teacher_id",
	"status", "result", "branch", "blood_type",
}

// SetField stores one form value in the draft.
// Changing "dob" recomputes the age check against today.
func (s *EnrollmentScreen) SetField(name, value string, today time.Time) error {
	d := &s.Draft
	switch name {
	case "first_name":
		d.FirstName = value
	case "last_name":
		d.LastName = value
	case "government_id":
		d.GovernmentID = value
	case "dob":
		d.DOB = value
		s.DOBError = dobError(value, today)
	case "category":
		d.Category = value
	case "previousLicense":
		d.PreviousLicense = value
	case "city":
		d.City = value
	case "subcity":
		d.Subcity = value
	case "education":
		d.Education = value
	case "phone":
		d.Phone = value
	case "start_date":
		d.StartDate = value
	case "teacher_id":
		value = strings.TrimSpace(value)
		if value == "" {
			d.TeacherID = nil
			return nil
		}
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return apperrors.NewFieldError(name, "Teacher must be selected from the list.")
		}
		d.TeacherID = &id
	case "status":
		d.Status = value
	case "result":
		d.Result = value
	case "branch":
		d.Branch = value
	case "blood_type":
		d.BloodType = value
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrBadRequest, name)
	}
	return nil
}

// Blocked reports whether an outstanding field error prevents submission
func (s *EnrollmentScreen) Blocked() bool {
	return s.DOBError != ""
}

// Reset clears the draft after a successful enrollment; the teacher list is kept
func (s *EnrollmentScreen) Reset() {
	s.Draft = Student{}
	s.DOBError = ""
	s.FieldErrors = nil
}

func dobError(value string, today time.Time) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	birth, err := helpers.ParseDate(value)
	if err != nil {
		return MsgInvalidDate
	}
	if helpers.CalculateAge(birth, today) < MinimumEnrollmentAge {
		return MsgUnderage
	}
	return ""
}
