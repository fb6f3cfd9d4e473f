package models

// Session is the authenticated identity for one logged-in interaction.
// It is a plain value passed explicitly into service calls; no expiry is
// modeled and no ambient login state exists anywhere.
type Session struct {
	CredentialID string
	Role         Role
	DisplayName  string
}

func (s Session) IsSecretariat() bool { return s.Role == RoleSecretariat }
func (s Session) IsTeacher() bool     { return s.Role == RoleTeacher }
func (s Session) IsStudent() bool     { return s.Role == RoleStudent }
