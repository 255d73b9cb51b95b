package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jask/queuedesk/internal/database"
	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/prefs"
)

type testEnv struct {
	db        *sql.DB
	accounts  *AccountService
	queue     *QueueService
	analytics *AnalyticsService
	importer  *ImportService
}

func newTestEnv(t *testing.T) (context.Context, testEnv) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	opts := prefs.Defaults()
	entries := repository.NewQueueEntryRepo(db)
	queue := &QueueService{Entries: entries, Options: opts}
	return ctx, testEnv{
		db:        db,
		accounts:  &AccountService{Users: repository.NewUserRepo(db), Options: opts, Cost: bcrypt.MinCost},
		queue:     queue,
		analytics: &AnalyticsService{Entries: entries},
		importer:  &ImportService{Queue: queue},
	}
}

func (e testEnv) register(t *testing.T, ctx context.Context, email, role string) Actor {
	t.Helper()
	acct, err := e.accounts.Register(ctx, RegisterInput{Name: "User " + email, Email: email, Password: "secret1", Role: role})
	require.NoError(t, err)
	return acct.Actor()
}
