package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// LiveStatuses are the statuses under which a booking still holds its slot.
var LiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID                 int64         `json:"id"`
	ListingID          int64         `json:"listing_id"`
	LandlordID         int64         `json:"landlord_id"`
	CandidateID        int64         `json:"candidate_id"`
	AvailabilitySlotID *int64        `json:"availability_slot_id"`
	Status             BookingStatus `json:"status"`
	ScheduledAt        time.Time     `json:"scheduled_at"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// CheckTransition decides whether the principal may move the booking to the
// requested status. Wrong-party attempts and moves out of a resolved status
// both report an invalid transition; the caller already passed the ownership
// check, so no information leaks by collapsing the two.
func (b *Booking) CheckTransition(p *Principal, to BookingStatus) error {
	switch to {
	case BookingStatusConfirmed, BookingStatusDeclined:
		if b.Status != BookingStatusPending {
			return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, b.Status)
		}
		if !p.IsAdmin() && p.ID != b.LandlordID {
			return fmt.Errorf("%w: only the landlord may resolve a pending booking", ErrInvalidTransition)
		}
	case BookingStatusCancelled:
		if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
			return fmt.Errorf("%w: booking is %s", ErrInvalidTransition, b.Status)
		}
		if !p.IsAdmin() && p.ID != b.LandlordID && p.ID != b.CandidateID {
			return fmt.Errorf("%w: only the involved parties may cancel", ErrInvalidTransition)
		}
	default:
		return fmt.Errorf("%w: cannot move to %s", ErrInvalidTransition, to)
	}
	return nil
}

// ReleasesSlot reports whether moving to the given status must free the
// booked slot. The release happens in the same transaction as the status
// change, never separately.
func (b *Booking) ReleasesSlot(to BookingStatus) bool {
	return b.AvailabilitySlotID != nil &&
		(to == BookingStatusDeclined || to == BookingStatusCancelled)
}
