package ports

import (
	"context"

	"github.com/avolkov/storefront-service/internal/domain/session"
)

type SessionStore interface {
	SaveSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, id string) (*session.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
