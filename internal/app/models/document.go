package models

// FileRef is the stored file descriptor the backend nests under "file"
type FileRef struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// StudentDocument is the per-student container that uploaded files attach to
type StudentDocument struct {
	ID        int64    `json:"id"`
	StudentID int64    `json:"student_id"`
	File      *FileRef `json:"file,omitempty"`
}

// StudentFile is one uploaded file belonging to a StudentDocument
type StudentFile struct {
	ID                int64   `json:"id"`
	StudentDocumentID int64   `json:"student_document_id"`
	File              FileRef `json:"file"`
}

// Entry converts an uploaded file into a document list entry for studentID
func (f StudentFile) Entry(studentID int64) StudentDocument {
	file := f.File
	return StudentDocument{
		ID:        f.StudentDocumentID,
		StudentID: studentID,
		File:      &file,
	}
}
