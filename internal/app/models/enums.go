package models

// Category is a driving licence category
type Category string

const (
	CategoryAutomobile       Category = "Automobile"
	CategoryPublicTransport1 Category = "Public Transport 1"
	CategoryPublicTransport2 Category = "Public Transport 2"
	CategoryDryCargo1        Category = "Dry Cargo 1"
	CategoryDryCargo2        Category = "Dry Cargo 2"
	CategoryMotorCycle       Category = "Motor Cycle"
)

// Categories lists every licence category in display order
var Categories = []Category{
	CategoryAutomobile,
	CategoryPublicTransport1,
	CategoryPublicTransport2,
	CategoryDryCargo1,
	CategoryDryCargo2,
	CategoryMotorCycle,
}

// EducationLevel of a student
type EducationLevel string

const (
	EducationHighSchool    EducationLevel = "High School"
	EducationUndergraduate EducationLevel = "Undergraduate"
	EducationPostgraduate  EducationLevel = "Postgraduate"
)

var EducationLevels = []EducationLevel{EducationHighSchool, EducationUndergraduate, EducationPostgraduate}

// StudentStatus is the training stage of a student
type StudentStatus string

const (
	StatusPractice StudentStatus = "Practice"
	StatusTheory   StudentStatus = "Theory"
	StatusDone     StudentStatus = "Done"
)

var Statuses = []StudentStatus{StatusPractice, StatusTheory, StatusDone}

// Branch of the school
type Branch string

const (
	BranchMegenagna Branch = "Megenagna"
	BranchPastor    Branch = "Pastor"
)

var Branches = []Branch{BranchMegenagna, BranchPastor}

// BloodType of a student
type BloodType string

var BloodTypes = []BloodType{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// contains reports whether value is one of the enum members
func contains[T ~string](values []T, value string) bool {
	for _, v := range values {
		if string(v) == value {
			return true
		}
	}
	return false
}

func IsCategory(v string) bool       { return contains(Categories, v) }
func IsEducationLevel(v string) bool { return contains(EducationLevels, v) }
func IsStatus(v string) bool         { return contains(Statuses, v) }
func IsBranch(v string) bool         { return contains(Branches, v) }
func IsBloodType(v string) bool      { return contains(BloodTypes, v) }
