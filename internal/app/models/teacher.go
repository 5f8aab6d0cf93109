package models

import "strings"

// Teacher is a driving instructor record as exchanged with the backend
type Teacher struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	BloodType string `json:"blood_type"`
	Category  string `json:"category"`
	Branch    string `json:"branch"`
	PlateNo   string `json:"plate_no"`
	Status    string `json:"status"`
}

// FullName returns "first last"
func (t Teacher) FullName() string {
	return joinName(t.FirstName, t.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
