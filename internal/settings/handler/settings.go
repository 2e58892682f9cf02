package handler

import (
	"net/http"

	"carhire/internal/settings/service"
	httputil "carhire/pkg/http"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SettingsHandler struct {
	service service.SettingsService
	log     *logger.Logger
}

func NewSettingsHandler(service service.SettingsService, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log,
	}
}

func (h *SettingsHandler) GetPricing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pricing, err := h.service.GetPricing(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetPricing", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, pricing); err != nil {
		h.log.Error("failed to write success response", "handler", "GetPricing", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) SavePricing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pricing model.PricingSettings
	if err := httputil.DecodeJSON(r, &pricing); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "SavePricing", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	saved, err := h.service.SavePricing(r.Context(), &pricing)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SavePricing", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, saved); err != nil {
		h.log.Error("failed to write success response", "handler", "SavePricing", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) GetWebsite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	website, err := h.service.GetWebsite(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetWebsite", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, website); err != nil {
		h.log.Error("failed to write success response", "handler", "GetWebsite", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) SaveWebsite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var update model.WebsiteSettingsUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "SaveWebsite", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	saved, err := h.service.SaveWebsite(r.Context(), &update)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SaveWebsite", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, saved); err != nil {
		h.log.Error("failed to write success response", "handler", "SaveWebsite", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SettingsHandler) RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle) {
	router.GET("/api/settings/pricing", h.GetPricing)
	router.PUT("/api/settings/pricing", admin(h.SavePricing))
	router.GET("/api/settings/website", h.GetWebsite)
	router.PUT("/api/settings/website", admin(h.SaveWebsite))
}
