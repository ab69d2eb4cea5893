package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/handler/dto"
	"github.com/pantgram/homidirect/internal/middleware"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, p *domain.Principal, id int64) (*domain.User, error)
}

type ListingSvc interface {
	Create(ctx context.Context, p *domain.Principal, input domain.CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context) ([]*domain.Listing, error)
	Update(ctx context.Context, p *domain.Principal, id int64, input domain.UpdateListingInput) (*domain.Listing, error)
}

type SlotSvc interface {
	Publish(ctx context.Context, p *domain.Principal, listingID int64, input domain.CreateSlotInput) (*domain.AvailabilitySlot, error)
	ListFree(ctx context.Context, listingID int64) ([]*domain.AvailabilitySlot, error)
}

type BookingSvc interface {
	Request(ctx context.Context, p *domain.Principal, listingID, slotID int64) (*domain.Booking, error)
	Confirm(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error)
	Decline(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error)
	Cancel(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error)
	Get(ctx context.Context, p *domain.Principal, bookingID int64) (*domain.Booking, error)
	ListMine(ctx context.Context, p *domain.Principal) ([]*domain.Booking, error)
}

type Handler struct {
	userService    UserSvc
	listingService ListingSvc
	slotService    SlotSvc
	bookingService BookingSvc
}

func NewHandler(userService UserSvc, listingService ListingSvc, slotService SlotSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		userService:    userService,
		listingService: listingService,
		slotService:    slotService,
		bookingService: bookingService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid role"})
		return
	}

	input := domain.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           role,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		LandlordID: req.LandlordID,
		Title:      req.Title,
		Address:    req.Address,
		PriceCents: req.PriceCents,
	}

	listing, err := h.listingService.Create(c.Request.Context(), p, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	listing, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) ListListings(c *ginext.Context) {
	listings, err := h.listingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateListingInput{
		Title:      req.Title,
		Address:    req.Address,
		PriceCents: req.PriceCents,
	}

	listing, err := h.listingService.Update(c.Request.Context(), p, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

// Slots

func (h *Handler) PublishSlot(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	listingID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	slot, err := h.slotService.Publish(c.Request.Context(), p, listingID, domain.CreateSlotInput{
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) ListListingSlots(c *ginext.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}

	slots, err := h.slotService.ListFree(c.Request.Context(), listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Request(c.Request.Context(), p, req.ListingID, req.SlotID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	h.bookingAction(c, h.bookingService.Get)
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	h.bookingAction(c, h.bookingService.Confirm)
}

func (h *Handler) DeclineBooking(c *ginext.Context) {
	h.bookingAction(c, h.bookingService.Decline)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.bookingAction(c, h.bookingService.Cancel)
}

func (h *Handler) bookingAction(c *ginext.Context, action func(context.Context, *domain.Principal, int64) (*domain.Booking, error)) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := action(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	bookings, err := h.bookingService.ListMine(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) GetUser(c *ginext.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		// Storage failures and other faults never masquerade as a denial.
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
