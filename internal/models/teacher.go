package models

import "time"

// Teacher teaches exactly one subject. TeacherCode is immutable once assigned
// ("PROF" + zero-padded sequence, e.g. "PROF001").
type Teacher struct {
	ID           string
	TeacherCode  string
	Name         string
	Subject      string
	CredentialID string
	CreatedAt    time.Time
}
