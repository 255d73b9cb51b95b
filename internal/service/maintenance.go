package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/queuedesk/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearHistory deletes every queue entry. Accounts are kept so the caller
// stays signed in.
func (s *MaintenanceService) ClearHistory(ctx context.Context, actor Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM queue_entries")
		if err != nil {
			return fmt.Errorf("clear queue_entries: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	}); err != nil {
		return 0, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return removed, nil
}
