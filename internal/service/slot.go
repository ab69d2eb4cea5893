package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports"
)

type SlotService struct {
	slotRepo    ports.SlotRepo
	listingRepo ports.ListingRepo
	resolver    *access.Resolver
	logger      logger.Logger
}

func NewSlotService(slotRepo ports.SlotRepo, listingRepo ports.ListingRepo, resolver *access.Resolver, logger logger.Logger) *SlotService {
	return &SlotService{
		slotRepo:    slotRepo,
		listingRepo: listingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *SlotService) Publish(ctx context.Context, p *domain.Principal, listingID int64, input domain.CreateSlotInput) (*domain.AvailabilitySlot, error) {
	if err := s.resolver.CanActOnListing(ctx, p, listingID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	slot := &domain.AvailabilitySlot{
		ListingID:  listingID,
		LandlordID: listing.LandlordID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
	}
	if err = s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("slot published",
		logger.Int64("slot_id", slot.ID),
		logger.Int64("listing_id", listingID),
	)

	return slot, nil
}

func (s *SlotService) ListFree(ctx context.Context, listingID int64) ([]*domain.AvailabilitySlot, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return s.slotRepo.ListFree(ctx, listingID)
}

// SweepExpired drops unbooked slots whose window has already passed.
// Invoked by the scheduler; bookings are never touched here.
func (s *SlotService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.slotRepo.DeleteExpiredFree(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("sweep expired slots: %w", err)
	}
	return removed, nil
}
