package ports

import (
	"context"

	"github.com/pantgram/homidirect/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
}
