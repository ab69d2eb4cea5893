package domain

import "time"

type Listing struct {
	ID         int64     `json:"id"`
	LandlordID int64     `json:"landlord_id"`
	Title      string    `json:"title"`
	Address    string    `json:"address"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateListingInput struct {
	// LandlordID as submitted by the client; the attribution guard
	// overwrites it with the resolved owner before storage.
	LandlordID *int64
	Title      string
	Address    string
	PriceCents int64
}

type UpdateListingInput struct {
	Title      string
	Address    string
	PriceCents int64
}
