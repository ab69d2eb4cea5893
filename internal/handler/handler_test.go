package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/handler/dto"
	hmocks "github.com/pantgram/homidirect/internal/handler/mocks"
)

type svcMocks struct {
	user    *hmocks.MockUserSvc
	listing *hmocks.MockListingSvc
	slot    *hmocks.MockSlotSvc
	booking *hmocks.MockBookingSvc
}

// setupRouter wires the handler behind test routes; p, when non-nil, is
// injected the way the auth middleware would after verifying a token.
func setupRouter(t *testing.T, p *domain.Principal) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		user:    hmocks.NewMockUserSvc(t),
		listing: hmocks.NewMockListingSvc(t),
		slot:    hmocks.NewMockSlotSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
	}

	h := NewHandler(m.user, m.listing, m.slot, m.booking)

	r := ginext.New("test")
	if p != nil {
		r.Use(func(c *ginext.Context) {
			c.Set("principal", p)
			c.Next()
		})
	}

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/users/:id", h.GetUser)
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.PUT("/listings/:id", h.UpdateListing)
		api.POST("/listings/:id/slots", h.PublishSlot)
		api.GET("/listings/:id/slots", h.ListListingSlots)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListMyBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/decline", h.DeclineBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	user := &domain.User{
		ID:        5,
		Email:     "tenant@example.com",
		Role:      domain.RoleTenant,
		CreatedAt: time.Now(),
	}
	m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "tenant@example.com",
		Password: "password123",
		Role:     "tenant",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tenant", resp.Role)
}

func TestHandler_Register_AdminRoleRejected(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     "admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.user.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "tenant@example.com",
		Password: "password123",
		Role:     "tenant",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	user := &domain.User{ID: 5, Email: "tenant@example.com", Role: domain.RoleTenant}
	m.user.EXPECT().Login(mock.Anything, "tenant@example.com", "password123").
		Return("a.b.c", user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "tenant@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c", resp.Token)
	assert.Equal(t, int64(5), resp.User.ID)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.user.EXPECT().Login(mock.Anything, "tenant@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "tenant@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	p := &domain.Principal{ID: 3, Role: domain.RoleLandlord}
	m, r := setupRouter(t, p)

	listing := &domain.Listing{ID: 10, LandlordID: 3, Title: "Studio on Main"}
	m.listing.EXPECT().Create(mock.Anything, p, mock.Anything).Return(listing, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{
		Title:      "Studio on Main",
		PriceCents: 95000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.LandlordID)
}

func TestHandler_CreateListing_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/listings", dto.CreateListingRequest{
		Title: "Studio on Main",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UpdateListing_Forbidden(t *testing.T) {
	p := &domain.Principal{ID: 8, Role: domain.RoleLandlord}
	m, r := setupRouter(t, p)

	m.listing.EXPECT().Update(mock.Anything, p, int64(10), mock.Anything).
		Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPut, "/api/v1/listings/10", dto.UpdateListingRequest{
		Title: "New title",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.listing.EXPECT().Get(mock.Anything, int64(99)).Return(nil, domain.ErrListingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/v1/listings/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, r := setupRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/listings/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Slots ---

func TestHandler_PublishSlot_Success(t *testing.T) {
	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	m, r := setupRouter(t, p)

	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	slot := &domain.AvailabilitySlot{
		ID: 11, ListingID: 10, LandlordID: 7,
		StartTime: start, EndTime: start.Add(time.Hour),
	}
	m.slot.EXPECT().Publish(mock.Anything, p, int64(10), mock.Anything).Return(slot, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/listings/10/slots", dto.CreateSlotRequest{
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.False(t, resp.IsBooked)
}

func TestHandler_PublishSlot_InvalidTime(t *testing.T) {
	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	_, r := setupRouter(t, p)

	w := doJSON(t, r, http.MethodPost, "/api/v1/listings/10/slots", dto.CreateSlotRequest{
		StartTime: "not-a-time",
		EndTime:   "also-not-a-time",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	m, r := setupRouter(t, p)

	slotID := int64(11)
	booking := &domain.Booking{
		ID: 3, ListingID: 10, LandlordID: 7, CandidateID: 5,
		AvailabilitySlotID: &slotID,
		Status:             domain.BookingStatusPending,
	}
	m.booking.EXPECT().Request(mock.Anything, p, int64(10), int64(11)).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings", dto.CreateBookingRequest{
		ListingID: 10,
		SlotID:    11,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	m, r := setupRouter(t, p)

	m.booking.EXPECT().Request(mock.Anything, p, int64(10), int64(11)).
		Return(nil, domain.ErrSlotTaken)

	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings", dto.CreateBookingRequest{
		ListingID: 10,
		SlotID:    11,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmBooking_InvalidTransition(t *testing.T) {
	p := &domain.Principal{ID: 7, Role: domain.RoleLandlord}
	m, r := setupRouter(t, p)

	m.booking.EXPECT().Confirm(mock.Anything, p, int64(3)).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings/3/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	p := &domain.Principal{ID: 9, Role: domain.RoleBoth}
	m, r := setupRouter(t, p)

	m.booking.EXPECT().Cancel(mock.Anything, p, int64(3)).
		Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPost, "/api/v1/bookings/3/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	m, r := setupRouter(t, p)

	m.booking.EXPECT().Get(mock.Anything, p, int64(404)).
		Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/v1/bookings/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	m, r := setupRouter(t, p)

	bookings := []*domain.Booking{
		{ID: 1, CandidateID: 5, LandlordID: 7, Status: domain.BookingStatusPending},
		{ID: 2, CandidateID: 5, LandlordID: 8, Status: domain.BookingStatusConfirmed},
	}
	m.booking.EXPECT().ListMine(mock.Anything, p).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_StorageErrorIsOpaque(t *testing.T) {
	p := &domain.Principal{ID: 5, Role: domain.RoleTenant}
	m, r := setupRouter(t, p)

	m.booking.EXPECT().Get(mock.Anything, p, int64(3)).
		Return(nil, errors.New("pq: connection reset"))

	w := doJSON(t, r, http.MethodGet, "/api/v1/bookings/3", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
