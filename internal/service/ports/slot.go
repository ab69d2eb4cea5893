package ports

import (
	"context"
	"time"

	"github.com/pantgram/homidirect/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.AvailabilitySlot) error
	ListFree(ctx context.Context, listingID int64) ([]*domain.AvailabilitySlot, error)
	// DeleteExpiredFree removes unbooked slots whose window ended before the
	// given moment and that no booking ever referenced.
	DeleteExpiredFree(ctx context.Context, before time.Time) (int64, error)
}
