package dto

import (
	"time"

	"github.com/pantgram/homidirect/internal/domain"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ListingResponse struct {
	ID         int64  `json:"id"`
	LandlordID int64  `json:"landlord_id"`
	Title      string `json:"title"`
	Address    string `json:"address"`
	PriceCents int64  `json:"price_cents"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type SlotResponse struct {
	ID        int64  `json:"id"`
	ListingID int64  `json:"listing_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}

type BookingResponse struct {
	ID                 int64  `json:"id"`
	ListingID          int64  `json:"listing_id"`
	LandlordID         int64  `json:"landlord_id"`
	CandidateID        int64  `json:"candidate_id"`
	AvailabilitySlotID *int64 `json:"availability_slot_id,omitempty"`
	Status             string `json:"status"`
	ScheduledAt        string `json:"scheduled_at"`
	CreatedAt          string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:         l.ID,
		LandlordID: l.LandlordID,
		Title:      l.Title,
		Address:    l.Address,
		PriceCents: l.PriceCents,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSlotResponse(s *domain.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		ListingID: s.ListingID,
		StartTime: s.StartTime.Format(time.RFC3339),
		EndTime:   s.EndTime.Format(time.RFC3339),
		IsBooked:  s.IsBooked,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		ListingID:          b.ListingID,
		LandlordID:         b.LandlordID,
		CandidateID:        b.CandidateID,
		AvailabilitySlotID: b.AvailabilitySlotID,
		Status:             string(b.Status),
		ScheduledAt:        b.ScheduledAt.Format(time.RFC3339),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
}
