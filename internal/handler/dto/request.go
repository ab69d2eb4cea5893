package dto

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role" binding:"required,oneof=landlord tenant both"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateListingRequest struct {
	// LandlordID is honored for admins only; everyone else is attributed
	// to themselves regardless of what they send.
	LandlordID *int64 `json:"landlord_id"`
	Title      string `json:"title" binding:"required"`
	Address    string `json:"address"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
}

type UpdateListingRequest struct {
	Title      string `json:"title" binding:"required"`
	Address    string `json:"address"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
}

type CreateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateBookingRequest struct {
	ListingID int64 `json:"listing_id" binding:"required"`
	SlotID    int64 `json:"slot_id" binding:"required"`
}
