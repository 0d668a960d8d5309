package models

// Role represents the available portal roles. Fixed at signup, immutable
// thereafter.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known portal roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Account represents a registered portal user persisted in the account store.
// The composite (ID, Role) is the uniqueness key: the same ID may exist under
// different roles.
//
// Credential is stored and compared as an opaque plain string (exact match,
// case-sensitive, no trimming), which makes this store unsuitable for any
// real deployment.
type Account struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Credential string `json:"password"`
}

// Session is the transient authenticated identity derived from an Account at
// login or signup. It is never persisted; at most one session exists at a
// time. Key is a per-session handle used for logging.
type Session struct {
	Key  string `json:"key"`
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// LoginInput carries the credentials entered on the login form.
type LoginInput struct {
	ID         string `json:"id"`
	Role       Role   `json:"role"`
	Credential string `json:"password"`
}

// SignupInput carries the fields entered on the signup form.
type SignupInput struct {
	Name              string `json:"name" validate:"required"`
	ID                string `json:"id" validate:"required"`
	Role              Role   `json:"role" validate:"required,oneof=student faculty admin"`
	Credential        string `json:"password" validate:"required"`
	ConfirmCredential string `json:"confirm_password"`
}
