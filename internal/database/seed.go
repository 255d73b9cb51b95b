package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/testdata"
)

// DemoUser is a seeded account and its plain-text password.
type DemoUser struct {
	Email    string
	Password string
	Name     string
	Role     string
}

var DemoUsers = []DemoUser{
	{Email: "student@college.edu", Password: "student123", Name: "Demo Student", Role: "student"},
	{Email: "admin@college.edu", Password: "admin123", Name: "Demo Admin", Role: "admin"},
}

// SeedResult reports what SeedDemo inserted.
type SeedResult struct {
	Users   int
	Entries int
}

// SeedDemo fills an empty database with the demo users and a week of queue
// entries. It does nothing when any user already exists.
func SeedDemo(ctx context.Context, db *sql.DB, now time.Time) (SeedResult, error) {
	users := repository.NewUserRepo(db)
	count, err := users.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return SeedResult{}, nil
	}

	ids := make([]string, 0, len(DemoUsers))
	for _, u := range DemoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return SeedResult{}, fmt.Errorf("hash demo password: %w", err)
		}
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("user:"+u.Email)).String()
		if err := users.Insert(ctx, repository.User{ID: id, Email: u.Email, Name: u.Name, Role: u.Role, PasswordHash: string(hash)}); err != nil {
			return SeedResult{}, fmt.Errorf("insert demo user %s: %w", u.Email, err)
		}
		ids = append(ids, id)
	}

	entries := testdata.Visits(uint64(now.Unix()), now, 7, ids)
	repo := repository.NewQueueEntryRepo(db)
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, e := range entries {
			if err := repo.InsertTx(ctx, tx, e); err != nil {
				return fmt.Errorf("insert demo entry: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return SeedResult{Users: len(ids), Entries: len(entries)}, nil
}
