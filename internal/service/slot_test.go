package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pantgram/homidirect/internal/access"
	accessmocks "github.com/pantgram/homidirect/internal/access/mocks"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports/mocks"
)

func TestSlotService_Publish(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(7), nil)
	listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).
		Return(&domain.Listing{ID: 10, LandlordID: 7}, nil)
	slotRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, s *domain.AvailabilitySlot) {
			s.ID = 11
		}).
		Return(nil)

	owner := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	slot, err := svc.Publish(context.Background(), owner, 10, domain.CreateSlotInput{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), slot.ID)
	assert.Equal(t, int64(7), slot.LandlordID)
	assert.False(t, slot.IsBooked)
}

func TestSlotService_Publish_StrangerForbidden(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(7), nil)

	stranger := &domain.Principal{ID: 8, Role: domain.RoleLandlord}
	start := time.Now()
	_, err := svc.Publish(context.Background(), stranger, 10, domain.CreateSlotInput{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	slotRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSlotService_Publish_InvalidWindow(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	store.EXPECT().ListingOwner(mock.Anything, int64(10)).Return(int64(7), nil)

	owner := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	start := time.Now()
	_, err := svc.Publish(context.Background(), owner, 10, domain.CreateSlotInput{
		StartTime: start,
		EndTime:   start,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_ListFree(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).
		Return(&domain.Listing{ID: 10, LandlordID: 7}, nil)
	slotRepo.EXPECT().ListFree(mock.Anything, int64(10)).
		Return([]*domain.AvailabilitySlot{{ID: 11, ListingID: 10}}, nil)

	slots, err := svc.ListFree(context.Background(), 10)

	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestSlotService_ListFree_ListingNotFound(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	listingRepo.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domain.ErrListingNotFound)

	_, err := svc.ListFree(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	slotRepo.AssertNotCalled(t, "ListFree", mock.Anything, mock.Anything)
}

func TestSlotService_SweepExpired(t *testing.T) {
	slotRepo := mocks.NewMockSlotRepo(t)
	listingRepo := mocks.NewMockListingRepo(t)
	store := accessmocks.NewMockOwnershipStore(t)
	svc := NewSlotService(slotRepo, listingRepo, access.NewResolver(store), newTestLogger(t))

	slotRepo.EXPECT().DeleteExpiredFree(mock.Anything, mock.Anything).Return(int64(4), nil)

	removed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
