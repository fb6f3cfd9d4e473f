package models

// ClassEntry is one row of a teacher's class view: a student, with the score
// that teacher recorded in their subject, if any. Score is nil for students
// not graded yet; they are listed all the same.
type ClassEntry struct {
	StudentID      string
	EnrollmentCode string
	StudentName    string
	ClassSection   string
	Score          *float64
}

// TranscriptEntry is one row of a student's transcript: a recorded grade
// together with the name of the teacher who recorded it.
type TranscriptEntry struct {
	Subject     string
	Score       float64
	TeacherName string
}
