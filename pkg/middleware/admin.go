package middleware

import (
	"context"
	"net/http"
	"strings"

	"carhire/pkg/auth"
	apperrors "carhire/pkg/errors"
	httputil "carhire/pkg/http"
	"carhire/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const AdminClaimsKey contextKey = "admin_claims"

type TokenVerifier interface {
	Enabled() bool
	Verify(token string) (*auth.AdminClaims, error)
}

// RequireAdmin wraps a single route so it only runs for a valid admin bearer
// token. Admin routes are closed entirely when no signing secret is set.
func RequireAdmin(verifier TokenVerifier, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			if !verifier.Enabled() {
				writeAdminError(w, log, apperrors.Unavailable("Admin authentication"))
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeAdminError(w, log, apperrors.Unauthorized("Admin authentication required"))
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				log.Warn("Rejected admin token",
					"request_id", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
					"error", err,
				)
				writeAdminError(w, log, apperrors.Unauthorized("Invalid or expired admin session"))
				return
			}

			ctx := context.WithValue(r.Context(), AdminClaimsKey, claims)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeAdminError(w http.ResponseWriter, log *logger.Logger, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "middleware", "RequireAdmin", "operation", "WriteError", "error", writeErr)
	}
}
