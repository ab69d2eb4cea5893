package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/access/mocks"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_CanActOnUser(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	self := &domain.Principal{ID: 7, Role: domain.RoleTenant}
	assert.NoError(t, r.CanActOnUser(self, 7))

	err := r.CanActOnUser(self, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	admin := &domain.Principal{ID: 1, Role: domain.RoleAdmin}
	assert.NoError(t, r.CanActOnUser(admin, 8))
}

func TestResolver_CanActOnListing_Owner(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(7), nil)

	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	assert.NoError(t, r.CanActOnListing(context.Background(), p, 10))
}

func TestResolver_CanActOnListing_Stranger(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(7), nil)

	p := &domain.Principal{ID: 8, Role: domain.RoleLandlord}
	err := r.CanActOnListing(context.Background(), p, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResolver_CanActOnListing_NotFoundBeforeComparison(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	store.EXPECT().ListingOwner(mock.Anything, int64(99)).
		Return(int64(0), domain.ErrListingNotFound)

	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	err := r.CanActOnListing(context.Background(), p, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestResolver_CanActOnListing_StorageErrorIsNotDenial(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	boom := errors.New("connection reset")
	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(0), boom)

	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	err := r.CanActOnListing(context.Background(), p, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestResolver_CanActOnBooking_Parties(t *testing.T) {
	cases := []struct {
		name    string
		p       *domain.Principal
		allowed bool
	}{
		{"candidate", &domain.Principal{ID: 5, Role: domain.RoleTenant}, true},
		{"landlord", &domain.Principal{ID: 7, Role: domain.RoleLandlord}, true},
		{"admin", &domain.Principal{ID: 1, Role: domain.RoleAdmin}, true},
		{"stranger", &domain.Principal{ID: 9, Role: domain.RoleBoth}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOwnershipStore(t)
			r := access.NewResolver(store)

			store.EXPECT().BookingParties(mock.Anything, int64(3)).
				Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)

			err := r.CanActOnBooking(context.Background(), tc.p, 3)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestResolver_CanActOnBooking_NotFound(t *testing.T) {
	store := mocks.NewMockOwnershipStore(t)
	r := access.NewResolver(store)

	store.EXPECT().BookingParties(mock.Anything, int64(404)).
		Return(access.BookingParties{}, domain.ErrBookingNotFound)

	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	err := r.CanActOnBooking(context.Background(), p, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
