package ports

import (
	"context"

	"github.com/stpnv0/RidePooler/internal/domain"
)

type RideNotifier interface {
	NotifyAssigned(ctx context.Context, account *domain.Account, carpool *domain.Carpool)
	NotifyCarpoolReady(ctx context.Context, account *domain.Account, carpool *domain.Carpool)
	NotifyExpired(ctx context.Context, account *domain.Account, booking *domain.Booking)
}
