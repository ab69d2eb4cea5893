package repository

import (
	"context"

	"github.com/pantgram/homidirect/internal/access"
)

// OwnershipStore adapts the listing and booking repositories to the access
// layer's projection port.
type OwnershipStore struct {
	listings *ListingRepository
	bookings *BookingRepository
}

func NewOwnershipStore(listings *ListingRepository, bookings *BookingRepository) *OwnershipStore {
	return &OwnershipStore{listings: listings, bookings: bookings}
}

func (s *OwnershipStore) ListingOwner(ctx context.Context, listingID int64) (int64, error) {
	return s.listings.OwnerID(ctx, listingID)
}

func (s *OwnershipStore) BookingParties(ctx context.Context, bookingID int64) (access.BookingParties, error) {
	candidateID, landlordID, err := s.bookings.Parties(ctx, bookingID)
	if err != nil {
		return access.BookingParties{}, err
	}
	return access.BookingParties{CandidateID: candidateID, LandlordID: landlordID}, nil
}
