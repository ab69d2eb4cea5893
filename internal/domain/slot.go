package domain

import (
	"fmt"
	"time"
)

// AvailabilitySlot is a landlord-published time window on a listing.
// A slot is consumed by at most one live booking at a time.
type AvailabilitySlot struct {
	ID         int64     `json:"id"`
	ListingID  int64     `json:"listing_id"`
	LandlordID int64     `json:"landlord_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	IsBooked   bool      `json:"is_booked"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateSlotInput struct {
	StartTime time.Time
	EndTime   time.Time
}

func (in CreateSlotInput) Validate() error {
	if !in.EndTime.After(in.StartTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}
	return nil
}
