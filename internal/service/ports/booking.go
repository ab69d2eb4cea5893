package ports

import (
	"context"

	"github.com/pantgram/homidirect/internal/domain"
)

type BookingRepo interface {
	// Allocate marks the slot booked and inserts the pending booking as one
	// transaction. Returns domain.ErrSlotNotFound if the slot is absent or
	// belongs to another listing, domain.ErrSlotTaken if it is already held
	// by a live booking.
	Allocate(ctx context.Context, listingID, slotID, candidateID int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByParticipant(ctx context.Context, userID int64) ([]*domain.Booking, error)
	// Transition moves the booking from its loaded status to the target
	// status, releasing the attached slot in the same transaction when the
	// target is a releasing status.
	Transition(ctx context.Context, b *domain.Booking, to domain.BookingStatus) error
}
