package core

import "strings"

const AdminRole = "admin"

// Session is the signed-in user as the TUI sees it. The zero value means
// nobody is signed in.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

func (s Session) SignedIn() bool {
	return strings.TrimSpace(s.UserID) != ""
}

func (s Session) IsAdmin() bool {
	return s.SignedIn() && s.Role == AdminRole
}

func (s Session) Label() string {
	if !s.SignedIn() {
		return "signed out"
	}
	return s.Name + " (" + s.Role + ")"
}
