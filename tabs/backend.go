package tabs

import (
	"context"
	"time"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/service"
)

const requestTimeout = 5 * time.Second

type AccountBackend interface {
	Register(ctx context.Context, in service.RegisterInput) (service.Account, error)
	Login(ctx context.Context, email, password string) (service.Account, error)
}

type QueueBackend interface {
	Record(ctx context.Context, actor service.Actor, in service.QueueInput) (repository.QueueEntry, error)
	List(ctx context.Context, actor service.Actor, limit int) ([]repository.QueueEntry, error)
}

type AnalyticsBackend interface {
	Summarise(ctx context.Context, actor service.Actor) (service.Summary, error)
}

// Data keys carried by core.DataLoadedMsg.
const (
	QueueDataKey     = "queue"
	AnalyticsDataKey = "analytics"
)

func actorOf(s core.Session) service.Actor {
	return service.Actor{UserID: s.UserID, Role: s.Role}
}

func sessionOf(a service.Account) core.Session {
	return core.Session{UserID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
