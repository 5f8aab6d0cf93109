package models

// DocumentScreen is the state of the student document manager
type DocumentScreen struct {
	Students  []Student                   `json:"students"`
	Documents map[int64][]StudentDocument `json:"documents"`
	Fetch     FetchState                  `json:"fetch"`
}

// GroupByStudent builds the per-student lookup, keeping each student's records in input order
func GroupByStudent(docs []StudentDocument) map[int64][]StudentDocument {
	grouped := make(map[int64][]StudentDocument)
	for _, doc := range docs {
		grouped[doc.StudentID] = append(grouped[doc.StudentID], doc)
	}
	return grouped
}

// DocumentsFor returns the student's local document list
func (s *DocumentScreen) DocumentsFor(studentID int64) []StudentDocument {
	return s.Documents[studentID]
}

// AppendFiles adds freshly uploaded files to the student's local list
func (s *DocumentScreen) AppendFiles(studentID int64, files []StudentFile) {
	if s.Documents == nil {
		s.Documents = make(map[int64][]StudentDocument)
	}
	for _, f := range files {
		s.Documents[studentID] = append(s.Documents[studentID], f.Entry(studentID))
	}
}

// FirstDocument picks the document record files should attach to.
// The boolean is false when the student has none.
func FirstDocument(docs []StudentDocument) (StudentDocument, bool) {
	if len(docs) == 0 {
		return StudentDocument{}, false
	}
	return docs[0], true
}
