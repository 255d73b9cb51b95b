package repository

import "time"

// User represents a users row.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

// QueueEntry represents one recorded visit to a campus queue.
type QueueEntry struct {
	ID             string
	UserID         string
	Location       string
	Date           string // YYYY-MM-DD
	EntryTime      string // HH:MM
	CompletionTime string // HH:MM
	WaitingMinutes int
	CreatedAt      time.Time
}
