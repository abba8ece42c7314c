// Package identity extracts the authenticated caller from the headers
// installed by the auth gateway. Token validation and identity issuance
// happen upstream; this middleware only parses the forwarded claims and
// rejects requests that carry none.
package identity

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"carRental/internal/lib/api/response"
	"carRental/internal/models"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type ctxKey struct{}

// New returns a middleware that requires a valid identity on every request.
// Requests without one are rejected with 401 before reaching any handler.
func New(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/identity"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(r.Header.Get(HeaderUserID))
			if err != nil {
				log.Warn("request without valid user id", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			role, ok := models.ParseRole(r.Header.Get(HeaderUserRole))
			if !ok {
				log.Warn("request with unknown role",
					slog.String("role", r.Header.Get(HeaderUserRole)),
					slog.String("path", r.URL.Path),
				)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			id := models.Identity{UserID: userID, Role: role}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		}

		return http.HandlerFunc(fn)
	}
}

// FromContext returns the identity stored by New.
func FromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(models.Identity)
	return id, ok
}
