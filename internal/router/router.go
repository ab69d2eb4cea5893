package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/pantgram/homidirect/internal/domain"
	"github.com/pantgram/homidirect/internal/middleware"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateListing(c *ginext.Context)
	GetListing(c *ginext.Context)
	ListListings(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	PublishSlot(c *ginext.Context)
	ListListingSlots(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	DeclineBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetUser(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authn ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	landlord := middleware.RequireRole(domain.RoleLandlord, domain.RoleBoth)
	tenant := middleware.RequireRole(domain.RoleTenant, domain.RoleBoth)

	api := router.Group("/api")
	{
		// Public
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/listings/:id/slots", h.ListListingSlots)

		authed := api.Group("", authn)
		{
			// Listings and slots
			authed.POST("/listings", landlord, h.CreateListing)
			authed.PUT("/listings/:id", landlord, h.UpdateListing)
			authed.POST("/listings/:id/slots", landlord, h.PublishSlot)

			// Bookings
			authed.POST("/bookings", tenant, h.CreateBooking)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.POST("/bookings/:id/confirm", landlord, h.ConfirmBooking)
			authed.POST("/bookings/:id/decline", landlord, h.DeclineBooking)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
			authed.GET("/me/bookings", h.ListMyBookings)

			// Users
			authed.GET("/users/:id", h.GetUser)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
