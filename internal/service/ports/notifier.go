package ports

import (
	"context"

	"github.com/pantgram/homidirect/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingRequested(ctx context.Context, landlord *domain.User, listing *domain.Listing, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, candidate *domain.User, listing *domain.Listing, b *domain.Booking)
	NotifyBookingDeclined(ctx context.Context, candidate *domain.User, listing *domain.Listing, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, recipient *domain.User, listing *domain.Listing, b *domain.Booking)
}
