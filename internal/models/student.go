package models

import "time"

// Student is an enrolled student. EnrollmentCode is immutable once assigned
// (YEAR + zero-padded sequence, e.g. "2025003").
type Student struct {
	ID             string
	EnrollmentCode string
	Name           string
	ClassSection   string
	CredentialID   string
	CreatedAt      time.Time
}
