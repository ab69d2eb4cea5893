package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/pantgram/homidirect/internal/domain"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.AvailabilitySlot) error {
	query := `INSERT INTO availability_slots (listing_id, landlord_id, start_time, end_time, is_booked, created_at)
			  VALUES ($1, $2, $3, $4, FALSE, now())
			  RETURNING id, created_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		s.ListingID, s.LandlordID, s.StartTime, s.EndTime,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	if err = row.Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) ListFree(ctx context.Context, listingID int64) ([]*domain.AvailabilitySlot, error) {
	query := `SELECT id, listing_id, landlord_id, start_time, end_time, is_booked, created_at
			  FROM availability_slots
			  WHERE listing_id = $1 AND is_booked = FALSE AND end_time > now()
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list free slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.AvailabilitySlot
	for rows.Next() {
		var s domain.AvailabilitySlot
		if err = rows.Scan(&s.ID, &s.ListingID, &s.LandlordID, &s.StartTime, &s.EndTime, &s.IsBooked, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// DeleteExpiredFree removes unbooked slots whose window ended before the
// given moment. Slots ever referenced by a booking are kept so terminal
// bookings retain their slot row.
func (r *SlotRepository) DeleteExpiredFree(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM availability_slots s
			  WHERE s.is_booked = FALSE
			    AND s.end_time < $1
			    AND NOT EXISTS (
			        SELECT 1 FROM bookings b WHERE b.availability_slot_id = s.id
			    )`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired slots: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired slots rows affected: %w", err)
	}

	return removed, nil
}
