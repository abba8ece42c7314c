package listPendingBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingDetails `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PendingBookingsGetter
type PendingBookingsGetter interface {
	PendingBookings() ([]models.BookingDetails, error)
}

func New(log *slog.Logger, bookings PendingBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listPendingBookings.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpListPendingBookings) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		pending, err := bookings.PendingBookings()
		if err != nil {
			log.Error("failed to get pending bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get pending bookings"))
			return
		}

		log.Info("pending bookings retrieved", slog.Int("count", len(pending)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: pending,
		})
	}
}
