package access

import (
	"context"

	"github.com/pantgram/homidirect/internal/domain"
)

// BookingParties is the ownership projection of a booking: just the two ids
// that matter for access decisions, never the full row.
type BookingParties struct {
	CandidateID int64
	LandlordID  int64
}

// OwnershipStore fetches ownership projections by id. Implementations return
// domain.ErrListingNotFound / domain.ErrBookingNotFound for absent rows;
// any other error is a storage failure and must not be read as a denial.
type OwnershipStore interface {
	ListingOwner(ctx context.Context, listingID int64) (int64, error)
	BookingParties(ctx context.Context, bookingID int64) (BookingParties, error)
}

type Resolver struct {
	store OwnershipStore
}

func NewResolver(store OwnershipStore) *Resolver {
	return &Resolver{store: store}
}

// CanActOnUser needs no lookup: a principal acts on itself, or is an admin.
func (r *Resolver) CanActOnUser(p *domain.Principal, userID int64) error {
	return permitted(p, userID)
}

// CanActOnListing resolves the listing's landlord and compares. Absence is
// reported before any ownership comparison.
func (r *Resolver) CanActOnListing(ctx context.Context, p *domain.Principal, listingID int64) error {
	landlordID, err := r.store.ListingOwner(ctx, listingID)
	if err != nil {
		return err
	}
	return permitted(p, landlordID)
}

// CanActOnBooking allows the booking's candidate, its landlord, or an admin.
func (r *Resolver) CanActOnBooking(ctx context.Context, p *domain.Principal, bookingID int64) error {
	parties, err := r.store.BookingParties(ctx, bookingID)
	if err != nil {
		return err
	}
	return permitted(p, parties.CandidateID, parties.LandlordID)
}
