package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/pantgram/homidirect/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Allocate consumes the slot and creates the pending booking in one
// transaction. The slot is taken by a conditional update gated on
// is_booked = FALSE, so two concurrent attempts resolve to one winner and
// one domain.ErrSlotTaken; there is no read-then-write window.
func (r *BookingRepository) Allocate(ctx context.Context, listingID, slotID, candidateID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	takeQuery := `UPDATE availability_slots
				  SET is_booked = TRUE
				  WHERE id = $1 AND listing_id = $2 AND is_booked = FALSE
				  RETURNING landlord_id, start_time`

	var landlordID int64
	var startTime time.Time
	err = tx.QueryRowContext(ctx, takeQuery, slotID, listingID).Scan(&landlordID, &startTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.classifySlot(ctx, tx, slotID, listingID)
		}
		return nil, fmt.Errorf("take slot: %w", err)
	}

	b := &domain.Booking{
		ListingID:          listingID,
		LandlordID:         landlordID,
		CandidateID:        candidateID,
		AvailabilitySlotID: &slotID,
		Status:             domain.BookingStatusPending,
		ScheduledAt:        startTime,
	}

	insertQuery := `INSERT INTO bookings
					(listing_id, landlord_id, candidate_id, availability_slot_id, status, scheduled_at, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, now(), now())
					RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		b.ListingID, b.LandlordID, b.CandidateID, b.AvailabilitySlotID, b.Status, b.ScheduledAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrSlotTaken
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

// classifySlot distinguishes a missing slot from one already held when the
// conditional take affected no rows. A slot is held exactly when a live
// booking references it; the partial unique index keeps that to one row.
func (r *BookingRepository) classifySlot(ctx context.Context, tx *sql.Tx, slotID, listingID int64) error {
	var held bool
	heldQuery := `SELECT EXISTS (
					  SELECT 1 FROM bookings
					  WHERE availability_slot_id = $1 AND listing_id = $2 AND status = ANY($3)
				  )`
	if err := tx.QueryRowContext(ctx, heldQuery, slotID, listingID, pq.Array(domain.LiveStatuses)).Scan(&held); err != nil {
		return fmt.Errorf("check slot holder: %w", err)
	}
	if held {
		return domain.ErrSlotTaken
	}
	return domain.ErrSlotNotFound
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT id, listing_id, landlord_id, candidate_id, availability_slot_id, status, scheduled_at, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.ListingID, &b.LandlordID, &b.CandidateID,
		&b.AvailabilitySlotID, &b.Status, &b.ScheduledAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByParticipant(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT id, listing_id, landlord_id, candidate_id, availability_slot_id, status, scheduled_at, created_at, updated_at
			  FROM bookings
			  WHERE candidate_id = $1 OR landlord_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.ListingID, &b.LandlordID, &b.CandidateID,
			&b.AvailabilitySlotID, &b.Status, &b.ScheduledAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// Transition moves the booking out of its loaded status and, when the move
// releases the slot, resets is_booked in the same transaction. A partial
// application (status flipped but slot still held, or the reverse) can not
// be observed: either both land or neither does.
func (r *BookingRepository) Transition(ctx context.Context, b *domain.Booking, to domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `UPDATE bookings
					SET status = $3, updated_at = now()
					WHERE id = $1 AND status = $2`

	res, err := tx.ExecContext(ctx, updateQuery, b.ID, b.Status, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// The row changed under us or vanished; re-read to say which.
		var current domain.BookingStatus
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, b.ID).Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("%w: booking is %s", domain.ErrInvalidTransition, current)
	}

	if b.ReleasesSlot(to) {
		releaseQuery := `UPDATE availability_slots SET is_booked = FALSE WHERE id = $1`
		if _, err = tx.ExecContext(ctx, releaseQuery, *b.AvailabilitySlotID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
	}

	return tx.Commit()
}

// Parties fetches only the two ids that matter for access decisions.
func (r *BookingRepository) Parties(ctx context.Context, id int64) (candidateID, landlordID int64, err error) {
	query := `SELECT candidate_id, landlord_id FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, 0, fmt.Errorf("get booking parties: %w", err)
	}

	if err = row.Scan(&candidateID, &landlordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrBookingNotFound
		}
		return 0, 0, fmt.Errorf("scan booking parties: %w", err)
	}

	return candidateID, landlordID, nil
}
