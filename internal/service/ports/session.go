package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	// Validate resolves a token to its owning account id. Expired tokens
	// surface as domain.ErrSessionExpired, unknown ones as
	// domain.ErrSessionNotFound.
	Validate(ctx context.Context, token string, now time.Time) (string, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
