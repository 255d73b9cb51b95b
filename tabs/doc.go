// Package tabs implements the account, queue and analytics tabs and the
// pane host they share. Tabs reach the database only through the backend
// interfaces in backend.go.
package tabs
