package handler

import "github.com/julienschmidt/httprouter"

// RegisterRoutes mounts the booking, quote and availability routes. Only
// booking creation, quotes and availability are public.
func (h *BookingHandler) RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle) {
	router.POST("/api/bookings", h.Create)
	router.POST("/api/quotes", h.Quote)
	router.GET("/api/availability/:carId", h.Availability)

	router.GET("/api/bookings", admin(h.GetAll))
	router.GET("/api/bookings/:id", admin(h.GetByID))
	router.GET("/api/bookings/:id/history", admin(h.History))
	router.PATCH("/api/bookings/:id/status", admin(h.UpdateStatus))
	router.DELETE("/api/bookings/:id", admin(h.Delete))
	router.GET("/api/exports/bookings", admin(h.Export))
}
