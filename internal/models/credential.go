// Package models holds the persisted entities of the grade-keeping domain
// and the in-process Session value produced by authentication.
package models

import "time"

// Role is one of the three fixed account roles.
type Role string

const (
	RoleSecretariat Role = "secretariat"
	RoleTeacher     Role = "teacher"
	RoleStudent     Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSecretariat, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// Credential is a login identity: username, bcrypt password hash and role.
// One row per person; the secretariat row is seeded at first boot, the rest
// are created by registration.
type Credential struct {
	ID           string
	Username     string
	PasswordHash []byte
	Role         Role
	DisplayName  string
	CreatedAt    time.Time
}
