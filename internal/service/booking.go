package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	userRepo    ports.UserRepo
	resolver    *access.Resolver
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	userRepo ports.UserRepo,
	resolver *access.Resolver,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
		resolver:    resolver,
		notifier:    notifier,
		logger:      logger,
	}
}

// Request books a free slot on the listing for the candidate. The slot
// consumption and the booking insert happen as one storage transaction;
// losing the race surfaces as domain.ErrSlotTaken.
func (s *BookingService) Request(ctx context.Context, p *domain.Principal, listingID, slotID int64) (*domain.Booking, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}

	booking, err := s.bookingRepo.Allocate(ctx, listingID, slotID, p.ID)
	if err != nil {
		return nil, fmt.Errorf("allocate slot: %w", err)
	}

	s.logger.Info("booking requested",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("listing_id", listingID),
		logger.Int64("slot_id", slotID),
		logger.Int64("candidate_id", p.ID),
	)

	go s.notifyRequested(context.WithoutCancel(ctx), listing, booking)

	return booking, nil
}

func (s *BookingService) Confirm(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, p, bookingID, domain.BookingStatusConfirmed)
}

func (s *BookingService) Decline(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, p, bookingID, domain.BookingStatusDeclined)
}

func (s *BookingService) Cancel(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error) {
	return s.transition(ctx, p, bookingID, domain.BookingStatusCancelled)
}

func (s *BookingService) Get(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error) {
	if err := s.resolver.CanActOnBooking(ctx, p, bookingID); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListMine(ctx context.Context, p *domain.Principal) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByParticipant(ctx, p.ID)
}

func (s *BookingService) transition(ctx context.Context, p *domain.Principal, bookingID int64, to domain.BookingStatus) (*domain.Booking, error) {
	// Strangers are rejected on the ownership projection before the full
	// row is loaded; involved parties attempting a move they may not make
	// get an invalid-transition error from the lifecycle check.
	if err := s.resolver.CanActOnBooking(ctx, p, bookingID); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = booking.CheckTransition(p, to); err != nil {
		return nil, err
	}

	if err = s.bookingRepo.Transition(ctx, booking, to); err != nil {
		return nil, fmt.Errorf("transition booking: %w", err)
	}
	booking.Status = to

	s.logger.Info("booking transitioned",
		logger.Int64("booking_id", booking.ID),
		logger.String("status", string(to)),
		logger.Int64("actor_id", p.ID),
	)

	go s.notifyResolved(context.WithoutCancel(ctx), p, booking)

	return booking, nil
}

func (s *BookingService) notifyRequested(ctx context.Context, listing *domain.Listing, b *domain.Booking) {
	landlord, err := s.userRepo.GetByID(ctx, listing.LandlordID)
	if err != nil {
		s.logger.Error("failed to get landlord for notification",
			logger.Int64("landlord_id", listing.LandlordID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyBookingRequested(ctx, landlord, listing, b)
}

func (s *BookingService) notifyResolved(ctx context.Context, actor *domain.Principal, b *domain.Booking) {
	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for notification",
			logger.Int64("listing_id", b.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	// Cancellations go to the other party; resolutions go to the candidate.
	recipientID := b.CandidateID
	if b.Status == domain.BookingStatusCancelled && actor.ID == b.CandidateID {
		recipientID = b.LandlordID
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		s.logger.Error("failed to get recipient for notification",
			logger.Int64("user_id", recipientID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch b.Status {
	case domain.BookingStatusConfirmed:
		s.notifier.NotifyBookingConfirmed(ctx, recipient, listing, b)
	case domain.BookingStatusDeclined:
		s.notifier.NotifyBookingDeclined(ctx, recipient, listing, b)
	case domain.BookingStatusCancelled:
		s.notifier.NotifyBookingCancelled(ctx, recipient, listing, b)
	}
}
