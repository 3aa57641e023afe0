// Package models defines the MeetIn client data types: the stored credential
// record, the remember-me entries, the session marker and visitor entries.
package models

import "time"

// Credential is the single registered user record. When password hashing is
// enabled Password is empty and PasswordHash/PasswordSalt carry an argon2id
// verifier instead.
type Credential struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Password     string `json:"password,omitempty"`
	PasswordHash []byte `json:"passwordHash,omitempty"`
	PasswordSalt []byte `json:"passwordSalt,omitempty"`
}

// Hashed reports whether the record stores a password verifier rather than
// the plain password.
func (c *Credential) Hashed() bool {
	return len(c.PasswordHash) > 0
}

// Profile is the sign-up form: the credential fields plus the password
// confirmation.
type Profile struct {
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	Address         string
	Password        string
	ConfirmPassword string
}

// Credential projects the profile onto a plain-text credential record.
func (p Profile) Credential() *Credential {
	return &Credential{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Password:  p.Password,
	}
}

// RememberMe mirrors the three persisted remember-me entries.
type RememberMe struct {
	Email    string
	Password string
	Enabled  bool
}

// LoginForm is the state of the login fields on screen entry.
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Session marks a successful login. It carries no token and never expires.
type Session struct {
	Email           string
	AuthenticatedAt time.Time
}
