package models

import (
	"testing"
	"time"

	"github.com/drivingschool/admin/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestEnrollmentDOBBoundary(t *testing.T) {
	var s EnrollmentScreen

	require.NoError(t, s.SetField("dob", "2006-06-15", day(2024, time.June, 14)))
	assert.Equal(t, MsgUnderage, s.DOBError)
	assert.True(t, s.Blocked())

	require.NoError(t, s.SetField("dob", "2006-06-15", day(2024, time.June, 15)))
	assert.Empty(t, s.DOBError)
	assert.False(t, s.Blocked())

	require.NoError(t, s.SetField("dob", "1980-01-01", day(2024, time.June, 15)))
	assert.Empty(t, s.DOBError)
	assert.Equal(t, "1980-01-01", s.Draft.DOB)
}

func TestEnrollmentDOBInvalidAndCleared(t *testing.T) {
	var s EnrollmentScreen
	today := day(2024, time.June, 15)

	require.NoError(t, s.SetField("dob", "not-a-date", today))
	assert.Equal(t, MsgInvalidDate, s.DOBError)

	require.NoError(t, s.SetField("dob", "", today))
	assert.Empty(t, s.DOBError)
}

func TestEnrollmentSetFields(t *testing.T) {
	var s EnrollmentScreen
	today := day(2024, time.June, 15)

	require.NoError(t, s.SetField("first_name", "Abebe", today))
	require.NoError(t, s.SetField("previousLicense", "AA-123", today))
	require.NoError(t, s.SetField("teacher_id", "7", today))
	require.NotNil(t, s.Draft.TeacherID)
	assert.Equal(t, int64(7), *s.Draft.TeacherID)

	require.NoError(t, s.SetField("teacher_id", "", today))
	assert.Nil(t, s.Draft.TeacherID)

	err := s.SetField("teacher_id", "seven", today)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = s.SetField("favourite_colour", "blue", today)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	assert.Equal(t, "Abebe", s.Draft.FirstName)
	assert.Equal(t, "AA-123", s.Draft.PreviousLicense)

	s.Teachers = []Teacher{{ID: 1}}
	s.Reset()
	assert.Equal(t, Student{}, s.Draft)
	assert.Len(t, s.Teachers, 1)
}

func TestTeacherEditorAddAppends(t *testing.T) {
	s := TeacherScreen{Teachers: []Teacher{{ID: 1, FirstName: "Kebede"}}}

	s.OpenAdd()
	require.True(t, s.IsOpen())
	assert.Equal(t, Teacher{}, s.Editor.Draft)

	s.ApplySaved(Teacher{ID: 2, FirstName: "Almaz"})
	require.Len(t, s.Teachers, 2)
	assert.Equal(t, int64(2), s.Teachers[1].ID)
	assert.False(t, s.IsOpen())
}

func TestTeacherEditorEditReplaces(t *testing.T) {
	s := TeacherScreen{Teachers: []Teacher{
		{ID: 1, FirstName: "Kebede"},
		{ID: 2, FirstName: "Almaz"},
		{ID: 3, FirstName: "Tigist"},
	}}

	require.NoError(t, s.OpenEdit(2))
	assert.Equal(t, "Almaz", s.Editor.Draft.FirstName)
	require.NoError(t, s.SetField("first_name", "Almaz B."))

	s.ApplySaved(Teacher{ID: 2, FirstName: "Almaz B."})
	require.Len(t, s.Teachers, 3)
	assert.Equal(t, "Kebede", s.Teachers[0].FirstName)
	assert.Equal(t, "Almaz B.", s.Teachers[1].FirstName)
	assert.Equal(t, "Tigist", s.Teachers[2].FirstName)
	assert.False(t, s.IsOpen())
}

func TestTeacherEditorSingleInstance(t *testing.T) {
	s := TeacherScreen{Teachers: []Teacher{{ID: 1, FirstName: "Kebede"}}}

	require.NoError(t, s.OpenEdit(1))
	s.OpenAdd()
	assert.Equal(t, EditorAdd, s.Editor.Mode)
	assert.Zero(t, s.Editor.EditingID)

	err := s.OpenEdit(99)
	require.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
	assert.Equal(t, EditorAdd, s.Editor.Mode)

	s.Close()
	assert.False(t, s.IsOpen())
}

func TestStudentScreenSelection(t *testing.T) {
	teacherID := int64(5)
	unknownID := int64(42)
	s := StudentScreen{
		Students: []Student{
			{ID: 1, FirstName: "Hana", TeacherID: &teacherID},
			{ID: 2, FirstName: "Yonas", TeacherID: &unknownID},
		},
		Teachers: []Teacher{{ID: 5, FirstName: "Kebede", LastName: "Alemu"}},
	}

	_, ok := s.Selected()
	assert.False(t, ok)

	require.NoError(t, s.Select(2))
	st, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Yonas", st.FirstName)

	require.ErrorIs(t, s.Select(9), apperrors.ErrStudentNotFound)
	st, _ = s.Selected()
	assert.Equal(t, int64(2), st.ID)

	s.Close()
	_, ok = s.Selected()
	assert.False(t, ok)

	assert.Equal(t, "Kebede Alemu", s.TeacherName(s.Students[0]))
	assert.Equal(t, "42", s.TeacherName(s.Students[1]))
	assert.Empty(t, s.TeacherName(Student{}))
}

func TestGroupByStudent(t *testing.T) {
	docs := []StudentDocument{
		{ID: 10, StudentID: 1},
		{ID: 11, StudentID: 1},
		{ID: 12, StudentID: 2},
	}

	grouped := GroupByStudent(docs)
	require.Len(t, grouped, 2)
	assert.Equal(t, []StudentDocument{docs[0], docs[1]}, grouped[1])
	assert.Equal(t, []StudentDocument{docs[2]}, grouped[2])
}

func TestFirstDocumentAndAppend(t *testing.T) {
	_, ok := FirstDocument(nil)
	assert.False(t, ok)

	doc, ok := FirstDocument([]StudentDocument{{ID: 3}, {ID: 4}})
	require.True(t, ok)
	assert.Equal(t, int64(3), doc.ID)

	var s DocumentScreen
	s.AppendFiles(1, []StudentFile{
		{ID: 100, StudentDocumentID: 3, File: FileRef{Filename: "id.pdf", URL: "/rails/id.pdf"}},
	})
	entries := s.DocumentsFor(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "id.pdf", entries[0].File.Filename)
	assert.Equal(t, int64(1), entries[0].StudentID)
}

func TestEnumMembership(t *testing.T) {
	assert.True(t, IsCategory("Public Transport 2"))
	assert.False(t, IsCategory("Tractor"))
	assert.True(t, IsBloodType("AB-"))
	assert.True(t, IsBranch("Pastor"))
	assert.True(t, IsStatus("Done"))
	assert.True(t, IsEducationLevel("Undergraduate"))
}
