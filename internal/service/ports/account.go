package ports

import (
	"context"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateSalary(ctx context.Context, id string, salary int64) error
}
