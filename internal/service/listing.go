package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/service/ports"
)

type ListingService struct {
	listingRepo ports.ListingRepo
	resolver    *access.Resolver
	logger      logger.Logger
}

func NewListingService(listingRepo ports.ListingRepo, resolver *access.Resolver, logger logger.Logger) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

func (s *ListingService) Create(ctx context.Context, p *domain.Principal, input domain.CreateListingInput) (*domain.Listing, error) {
	landlordID, err := access.ResolveLandlord(p, input.LandlordID)
	if err != nil {
		return nil, err
	}
	// The resolved owner overwrites whatever the client submitted.
	input.LandlordID = &landlordID

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	listing := &domain.Listing{
		LandlordID: *input.LandlordID,
		Title:      input.Title,
		Address:    input.Address,
		PriceCents: input.PriceCents,
	}
	if err = s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.logger.Info("listing created",
		logger.Int64("listing_id", listing.ID),
		logger.Int64("landlord_id", listing.LandlordID),
	)

	return listing, nil
}

func (s *ListingService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.listingRepo.GetByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]*domain.Listing, error) {
	return s.listingRepo.List(ctx)
}

func (s *ListingService) Update(ctx context.Context, p *domain.Principal, id int64, input domain.UpdateListingInput) (*domain.Listing, error) {
	if err := s.resolver.CanActOnListing(ctx, p, id); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	listing.Title = input.Title
	listing.Address = input.Address
	listing.PriceCents = input.PriceCents

	if err = s.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	return listing, nil
}
