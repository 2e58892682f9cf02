package handler

import (
	"net/http"
	"strconv"

	"carhire/internal/cars/service"
	apperrors "carhire/pkg/errors"
	httputil "carhire/pkg/http"
	"carhire/pkg/logger"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const (
	bySlugSegment  = "by-slug"
	relatedSegment = "related"
)

type CarHandler struct {
	service service.CarService
	log     *logger.Logger
}

func NewCarHandler(service service.CarService, log *logger.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		log:     log,
	}
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.CarCreate
	if err := httputil.DecodeJSON(r, &in); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	car, err := h.service.Create(r.Context(), &in)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, car); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *CarHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := parseFilter(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	cars, err := h.service.GetAll(r.Context(), filter)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, cars); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CarHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.writeCar(w, "GetByID", func() (*model.Car, error) {
		return h.service.GetByID(r.Context(), ps.ByName("id"))
	})
}

// GetSubresource serves /api/cars/:id/:sub. httprouter cannot register a
// static segment next to :id, so /api/cars/by-slug/:slug lands here too.
func (h *CarHandler) GetSubresource(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, sub := ps.ByName("id"), ps.ByName("sub")

	switch {
	case id == bySlugSegment:
		h.writeCar(w, "GetBySlug", func() (*model.Car, error) {
			return h.service.GetBySlug(r.Context(), sub)
		})
	case sub == relatedSegment:
		h.Related(w, r, ps)
	default:
		if writeErr := httputil.WriteError(w, apperrors.NotFound("Resource")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetSubresource", "operation", "WriteError", "error", writeErr)
		}
	}
}

func (h *CarHandler) Related(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cars, err := h.service.Related(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Related", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, cars); err != nil {
		h.log.Error("failed to write success response", "handler", "Related", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CarHandler) Categories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Categories", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, categories); err != nil {
		h.log.Error("failed to write success response", "handler", "Categories", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.CarUpdate
	if err := httputil.DecodeJSON(r, &updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	h.writeCar(w, "Update", func() (*model.Car, error) {
		return h.service.Update(r.Context(), ps.ByName("id"), &updates)
	})
}

func (h *CarHandler) Duplicate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	car, err := h.service.Duplicate(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Duplicate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, car); err != nil {
		h.log.Error("failed to write created response", "handler", "Duplicate", "operation", "WriteCreated", "error", err)
	}
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *CarHandler) writeCar(w http.ResponseWriter, handler string, fetch func() (*model.Car, error)) {
	car, err := fetch()
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, car); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func parseFilter(r *http.Request) (model.CarFilter, error) {
	query := r.URL.Query()
	filter := model.CarFilter{
		Search:       query.Get("search"),
		Category:     query.Get("category"),
		Transmission: query.Get("transmission"),
		Sort:         query.Get("sort"),
	}

	if s := query.Get("seats"); s != "" {
		seats, err := strconv.Atoi(s)
		if err != nil || seats < 0 {
			return filter, apperrors.InvalidInput("invalid seats parameter: " + s)
		}
		filter.Seats = seats
	}

	available, ok, err := httputil.QueryBool(r, "available")
	if err != nil {
		return filter, err
	}
	if ok {
		filter.Available = &available
	}

	return filter, nil
}
