package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/pantgram/homidirect/internal/domain"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (landlord_id, title, address, price_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, now(), now())
			  RETURNING id, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		l.LandlordID, l.Title, l.Address, l.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	if err = row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT id, landlord_id, title, address, price_cents, created_at, updated_at
			  FROM listings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	var l domain.Listing
	if err = row.Scan(&l.ID, &l.LandlordID, &l.Title, &l.Address, &l.PriceCents, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return &l, nil
}

func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT id, landlord_id, title, address, price_cents, created_at, updated_at
			  FROM listings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err = rows.Scan(&l.ID, &l.LandlordID, &l.Title, &l.Address, &l.PriceCents, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET title = $2, address = $3, price_cents = $4, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, l.ID, l.Title, l.Address, l.PriceCents)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// OwnerID fetches only the ownership projection of a listing.
func (r *ListingRepository) OwnerID(ctx context.Context, id int64) (int64, error) {
	query := `SELECT landlord_id FROM listings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, fmt.Errorf("get listing owner: %w", err)
	}

	var landlordID int64
	if err = row.Scan(&landlordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrListingNotFound
		}
		return 0, fmt.Errorf("scan listing owner: %w", err)
	}

	return landlordID, nil
}
