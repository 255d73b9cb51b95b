package repository

import (
	"context"
	"database/sql"
	"strings"
)

// QueueEntryFilters defines list filters. Zero values mean no filter.
type QueueEntryFilters struct {
	UserID   string
	Location string
	Limit    int
}

// QueueEntryRepo handles queue entries.
type QueueEntryRepo struct {
	db *sql.DB
}

func NewQueueEntryRepo(db *sql.DB) *QueueEntryRepo { return &QueueEntryRepo{db: db} }

func (r *QueueEntryRepo) Insert(ctx context.Context, e QueueEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO queue_entries(
	 id, user_id, location, date, entry_time, completion_time, waiting_minutes, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, e.ID, e.UserID, e.Location, e.Date, e.EntryTime, e.CompletionTime, e.WaitingMinutes)
	return err
}

// InsertTx is Insert inside a caller-owned transaction.
func (r *QueueEntryRepo) InsertTx(ctx context.Context, tx *sql.Tx, e QueueEntry) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO queue_entries(
	 id, user_id, location, date, entry_time, completion_time, waiting_minutes, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, e.ID, e.UserID, e.Location, e.Date, e.EntryTime, e.CompletionTime, e.WaitingMinutes)
	return err
}

// List returns entries newest first.
func (r *QueueEntryRepo) List(ctx context.Context, f QueueEntryFilters) ([]QueueEntry, error) {
	var where []string
	var args []any

	if f.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.Location != "" {
		where = append(where, "location = ?")
		args = append(args, f.Location)
	}

	query := `SELECT id, user_id, location, date, entry_time, completion_time, waiting_minutes, created_at FROM queue_entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, entry_time DESC, created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []QueueEntry
	for rows.Next() {
		var e QueueEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Location, &e.Date, &e.EntryTime, &e.CompletionTime, &e.WaitingMinutes, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *QueueEntryRepo) ListAll(ctx context.Context) ([]QueueEntry, error) {
	return r.List(ctx, QueueEntryFilters{})
}
