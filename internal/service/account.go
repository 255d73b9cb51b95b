package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/prefs"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const defaultRole = "student"

// AccountService registers users and checks their credentials.
type AccountService struct {
	Users   *repository.UserRepo
	Options prefs.Options
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Account is a user without the password hash.
type Account struct {
	ID        string
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

func (a Account) Actor() Actor {
	return Actor{UserID: a.ID, Role: a.Role}
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (Account, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || in.Password == "" {
		return Account{}, ErrMissingFields
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = defaultRole
	}
	if !s.Options.HasRole(role) {
		return Account{}, fmt.Errorf("role %q: %w", role, ErrUnknownOption)
	}
	if !emailPattern.MatchString(email) {
		return Account{}, ErrInvalidEmail
	}
	if _, err := s.Users.ByEmail(ctx, email); err == nil {
		return Account{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return Account{}, fmt.Errorf("lookup user: %w", err)
	}

	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}
	u := repository.User{ID: uuid.NewString(), Email: email, Name: name, Role: role, PasswordHash: string(hash)}
	if err := s.Users.Insert(ctx, u); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return Account{}, ErrEmailTaken
		}
		return Account{}, fmt.Errorf("insert user: %w", err)
	}
	stored, err := s.Users.ByID(ctx, u.ID)
	if err != nil {
		return Account{}, fmt.Errorf("reload user: %w", err)
	}
	return accountFrom(stored), nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Account{}, ErrMissingFields
	}
	u, err := s.Users.ByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}
	return accountFrom(u), nil
}

func accountFrom(u repository.User) Account {
	return Account{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt}
}
