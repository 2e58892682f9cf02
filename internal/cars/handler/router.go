package handler

import "github.com/julienschmidt/httprouter"

// RegisterRoutes mounts the catalog routes. Mutations are wrapped with admin.
func (h *CarHandler) RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle) {
	router.GET("/api/cars", h.GetAll)
	router.GET("/api/cars/:id", h.GetByID)
	router.GET("/api/cars/:id/:sub", h.GetSubresource)
	router.GET("/api/car-categories", h.Categories)

	router.POST("/api/cars", admin(h.Create))
	router.PATCH("/api/cars/:id", admin(h.Update))
	router.POST("/api/cars/:id/duplicate", admin(h.Duplicate))
	router.DELETE("/api/cars/:id", admin(h.Delete))
}
