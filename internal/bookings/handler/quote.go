package handler

import (
	"net/http"

	httputil "carhire/pkg/http"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityResponse struct {
	CarID            string   `json:"carId"`
	Date             string   `json:"date,omitempty"`
	Available        *bool    `json:"available,omitempty"`
	UnavailableDates []string `json:"unavailableDates,omitempty"`
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.QuoteRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Quote", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	quote, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Quote", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

// Availability answers for one ?date= when given, otherwise lists every
// unavailable date of the car.
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	carID := ps.ByName("carId")
	resp := AvailabilityResponse{CarID: carID}

	var err error
	if date := r.URL.Query().Get("date"); date != "" {
		var available bool
		available, err = h.service.IsAvailable(r.Context(), carID, date)
		resp.Date = date
		resp.Available = &available
	} else {
		resp.UnavailableDates, err = h.service.UnavailableDates(r.Context(), carID)
		if resp.UnavailableDates == nil {
			resp.UnavailableDates = []string{}
		}
	}

	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Availability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Availability", "operation", "WriteSuccess", "error", err)
	}
}
