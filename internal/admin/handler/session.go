package handler

import (
	"errors"
	"net/http"
	"time"

	"carhire/pkg/auth"
	apperrors "carhire/pkg/errors"
	httputil "carhire/pkg/http"
	"carhire/pkg/logger"
	"carhire/pkg/middleware"
	"carhire/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// TokenIssuer signs admin session tokens. *auth.TokenManager satisfies it.
type TokenIssuer interface {
	Enabled() bool
	Issue() (string, time.Time, error)
}

type SessionHandler struct {
	issuer       TokenIssuer
	passwordHash string
	log          *logger.Logger
}

func NewSessionHandler(issuer TokenIssuer, passwordHash string, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		issuer:       issuer,
		passwordHash: passwordHash,
		log:          log,
	}
}

// Create exchanges the admin password for a signed session token.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var login model.AdminLogin
	if err := httputil.DecodeJSON(r, &login); err != nil || login.Password == "" {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if !h.issuer.Enabled() || h.passwordHash == "" {
		h.writeError(w, "Create", apperrors.Unavailable("Admin authentication"))
		return
	}

	if err := auth.CheckPassword(h.passwordHash, login.Password); err != nil {
		h.log.Warn("Admin login rejected",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"remote_addr", r.RemoteAddr,
			"error", err,
		)
		if errors.Is(err, auth.ErrNotConfigured) {
			h.writeError(w, "Create", apperrors.Unavailable("Admin authentication"))
			return
		}
		h.writeError(w, "Create", apperrors.Unauthorized("Invalid password"))
		return
	}

	token, expiresAt, err := h.issuer.Issue()
	if err != nil {
		h.log.Error("Failed to issue admin token", "error", err)
		h.writeError(w, "Create", apperrors.Internal("Failed to create admin session", err))
		return
	}

	h.log.Info("Admin session created", "expires_at", expiresAt)

	if err := httputil.WriteCreated(w, model.AdminSession{Token: token, ExpiresAt: expiresAt}); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

// Current reports the expiry of the session presenting the request. It is
// mounted behind RequireAdmin.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := r.Context().Value(middleware.AdminClaimsKey).(*auth.AdminClaims)
	if !ok || claims.ExpiresAt == nil {
		h.writeError(w, "Current", apperrors.Unauthorized("Admin authentication required"))
		return
	}

	if err := httputil.WriteSuccess(w, model.AdminSession{ExpiresAt: claims.ExpiresAt.Time}); err != nil {
		h.log.Error("failed to write success response", "handler", "Current", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *SessionHandler) RegisterRoutes(router *httprouter.Router, admin func(httprouter.Handle) httprouter.Handle) {
	router.POST("/api/admin/sessions", h.Create)
	router.GET("/api/admin/sessions/current", admin(h.Current))
}
