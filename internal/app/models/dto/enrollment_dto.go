package dto

// EnrollmentForm is the posted enrollment form
type EnrollmentForm struct {
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	GovernmentID    string `form:"government_id"`
	DOB             string `form:"dob"`
	Category        string `form:"category"`
	PreviousLicense string `form:"previousLicense"`
	City            string `form:"city"`
	Subcity         string `form:"subcity"`
	Education       string `form:"education"`
	Phone           string `form:"phone"`
	StartDate       string `form:"start_date"`
	TeacherID       string `form:"teacher_id"`
	Status          string `form:"status"`
	Result          string `form:"result"`
	Branch          string `form:"branch"`
	BloodType       string `form:"blood_type"`
}

// Fields returns the form values keyed by student field name
func (f EnrollmentForm) Fields() map[string]string {
	return map[string]string{
		"first_name":      f.FirstName,
		"last_name":       f.LastName,
		"government_id":   f.GovernmentID,
		"dob":             f.DOB,
		"category":        f.Category,
		"previousLicense": f.PreviousLicense,
		"city":            f.City,
		"subcity":         f.Subcity,
		"education":       f.Education,
		"phone":           f.Phone,
		"start_date":      f.StartDate,
		"teacher_id":      f.TeacherID,
		"status":          f.Status,
		"result":          f.Result,
		"branch":          f.Branch,
		"blood_type":      f.BloodType,
	}
}

// DOBCheckRequest is the body of the on-change date of birth check
type DOBCheckRequest struct {
	DOB string `json:"dob" binding:"required,isodate"`
}

// DOBCheckResponse carries the field error for the date of birth, empty when valid
type DOBCheckResponse struct {
	DOB   string `json:"dob"`
	Error string `json:"error,omitempty"`
	Age   *int   `json:"age,omitempty"`
}

// TeacherOption is one entry of the enrollment form's teacher select
type TeacherOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
