package models

// Student is a student record as exchanged with the backend
type Student struct {
	ID              int64  `json:"id,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	GovernmentID    string `json:"government_id"`
	DOB             string `json:"dob" validate:"omitempty,isodate"` // YYYY-MM-DD
	Category        string `json:"category" validate:"omitempty,drivecategory"`
	PreviousLicense string `json:"previousLicense"`
	City            string `json:"city"`
	Subcity         string `json:"subcity"`
	Education       string `json:"education" validate:"omitempty,education"`
	Phone           string `json:"phone"`
	StartDate       string `json:"start_date" validate:"omitempty,isodate"` // YYYY-MM-DD
	TeacherID       *int64 `json:"teacher_id"`                              // weak reference, not checked locally
	Status          string `json:"status" validate:"omitempty,studentstatus"`
	Result          string `json:"result"`
	Branch          string `json:"branch" validate:"omitempty,branch"`
	BloodType       string `json:"blood_type" validate:"omitempty,bloodtype"`
}

// FullName returns "first last"
func (s Student) FullName() string {
	return joinName(s.FirstName, s.LastName)
}
