package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/pantgram/homidirect/internal/access"
	accessmocks "github.com/pantgram/homidirect/internal/access/mocks"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func slotRef(v int64) *int64 { return &v }

type bookingFixture struct {
	bookingRepo *mocks.MockBookingRepo
	listingRepo *mocks.MockListingRepo
	userRepo    *mocks.MockUserRepo
	store       *accessmocks.MockOwnershipStore
	notifier    *mocks.MockBookingNotifier
	svc         *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	f := &bookingFixture{
		bookingRepo: mocks.NewMockBookingRepo(t),
		listingRepo: mocks.NewMockListingRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		store:       accessmocks.NewMockOwnershipStore(t),
		notifier:    mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(
		f.bookingRepo, f.listingRepo, f.userRepo,
		access.NewResolver(f.store), f.notifier, newTestLogger(t),
	)
	return f
}

func TestBookingService_Request(t *testing.T) {
	f := newBookingFixture(t)

	listing := &domain.Listing{ID: 10, LandlordID: 7, Title: "Studio on Main"}
	landlord := &domain.User{ID: 7, Email: "landlord@example.com"}
	booking := &domain.Booking{
		ID:                 3,
		ListingID:          10,
		LandlordID:         7,
		CandidateID:        5,
		AvailabilitySlotID: slotRef(11),
		Status:             domain.BookingStatusPending,
	}

	f.listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(listing, nil)
	f.bookingRepo.EXPECT().Allocate(mock.Anything, int64(10), int64(11), int64(5)).Return(booking, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(landlord, nil)
	f.notifier.EXPECT().NotifyBookingRequested(mock.Anything, landlord, listing, booking).Return()

	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	got, err := f.svc.Request(context.Background(), p, 10, 11)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, int64(7), got.LandlordID)
	assert.Equal(t, int64(5), got.CandidateID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Request_SlotTaken(t *testing.T) {
	f := newBookingFixture(t)

	f.listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).
		Return(&domain.Listing{ID: 10, LandlordID: 7}, nil)
	f.bookingRepo.EXPECT().Allocate(mock.Anything, int64(10), int64(11), int64(5)).
		Return(nil, domain.ErrSlotTaken)

	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	_, err := f.svc.Request(context.Background(), p, 10, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Request_ListingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.listingRepo.EXPECT().GetByID(mock.Anything, int64(99)).
		Return(nil, domain.ErrListingNotFound)

	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	_, err := f.svc.Request(context.Background(), p, 99, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestBookingService_Confirm_ByLandlord(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:                 3,
		ListingID:          10,
		LandlordID:         7,
		CandidateID:        5,
		AvailabilitySlotID: slotRef(11),
		Status:             domain.BookingStatusPending,
	}
	listing := &domain.Listing{ID: 10, LandlordID: 7}
	candidate := &domain.User{ID: 5, Email: "tenant@example.com"}

	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(booking, nil)
	f.bookingRepo.EXPECT().Transition(mock.Anything, booking, domain.BookingStatusConfirmed).Return(nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(listing, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(candidate, nil)
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, candidate, listing, booking).Return()

	landlord := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	got, err := f.svc.Confirm(context.Background(), landlord, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_ByCandidateIsInvalid(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID: 3, ListingID: 10, LandlordID: 7, CandidateID: 5,
		Status: domain.BookingStatusPending,
	}

	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(booking, nil)

	candidate := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	_, err := f.svc.Confirm(context.Background(), candidate, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	f.bookingRepo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Transition_StrangerIsForbidden(t *testing.T) {
	f := newBookingFixture(t)

	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)

	stranger := &domain.Principal{ID: 9, Role: domain.RoleBoth}
	_, err := f.svc.Cancel(context.Background(), stranger, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.bookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_ByCandidateNotifiesLandlord(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:                 3,
		ListingID:          10,
		LandlordID:         7,
		CandidateID:        5,
		AvailabilitySlotID: slotRef(11),
		Status:             domain.BookingStatusConfirmed,
	}
	listing := &domain.Listing{ID: 10, LandlordID: 7}
	landlord := &domain.User{ID: 7, Email: "landlord@example.com"}

	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(booking, nil)
	f.bookingRepo.EXPECT().Transition(mock.Anything, booking, domain.BookingStatusCancelled).
		Run(func(ctx context.Context, b *domain.Booking, to domain.BookingStatus) {
			assert.True(t, b.ReleasesSlot(to))
		}).
		Return(nil)
	f.listingRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(listing, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(landlord, nil)
	f.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, landlord, listing, booking).Return()

	candidate := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	got, err := f.svc.Cancel(context.Background(), candidate, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Decline_AfterResolutionIsInvalid(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID: 3, ListingID: 10, LandlordID: 7, CandidateID: 5,
		Status: domain.BookingStatusDeclined,
	}

	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{CandidateID: 5, LandlordID: 7}, nil)
	f.bookingRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(booking, nil)

	landlord := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	_, err := f.svc.Decline(context.Background(), landlord, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Transition_StorageErrorPropagates(t *testing.T) {
	f := newBookingFixture(t)

	boom := errors.New("connection reset")
	f.store.EXPECT().BookingParties(mock.Anything, int64(3)).
		Return(access.BookingParties{}, boom)

	landlord := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	_, err := f.svc.Confirm(context.Background(), landlord, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_ListMine(t *testing.T) {
	f := newBookingFixture(t)

	bookings := []*domain.Booking{
		{ID: 1, CandidateID: 5, LandlordID: 7},
		{ID: 2, CandidateID: 4, LandlordID: 5},
	}
	f.bookingRepo.EXPECT().ListByParticipant(mock.Anything, int64(5)).Return(bookings, nil)

	p := &domain.Principal{ID: 5, Role: domain.RoleBoth}
	got, err := f.svc.ListMine(context.Background(), p)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
