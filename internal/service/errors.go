package service

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownOption      = errors.New("unknown option")
	ErrInvalidTime        = errors.New("invalid date or time")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
)

const AdminRole = "admin"

// Actor is the signed-in user a call is made on behalf of. The zero value is
// an anonymous caller.
type Actor struct {
	UserID string
	Role   string
}

func (a Actor) SignedIn() bool { return a.UserID != "" }
func (a Actor) IsAdmin() bool  { return a.SignedIn() && a.Role == AdminRole }
