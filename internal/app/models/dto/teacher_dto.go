package dto

// TeacherForm is the posted teacher editor form
type TeacherForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Phone     string `form:"phone"`
	BloodType string `form:"blood_type"`
	Category  string `form:"category"`
	Branch    string `form:"branch"`
	PlateNo   string `form:"plate_no"`
	Status    string `form:"status"`
}

// Fields returns the form values keyed by teacher field name
func (f TeacherForm) Fields() map[string]string {
	return map[string]string{
		"first_name": f.FirstName,
		"last_name":  f.LastName,
		"phone":      f.Phone,
		"blood_type": f.BloodType,
		"category":   f.Category,
		"branch":     f.Branch,
		"plate_no":   f.PlateNo,
		"status":     f.Status,
	}
}
