package listUserBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserBookingsGetter
type UserBookingsGetter interface {
	BookingsByUser(userID uuid.UUID) ([]models.BookingDetails, error)
}

// New lists the caller's own bookings; the user id always comes from the
// authenticated identity, never from the request.
func New(log *slog.Logger, bookings UserBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listUserBookings.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpListOwnBookings) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		list, err := bookings.BookingsByUser(id.UserID)
		if err != nil {
			log.Error("failed to get user bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("user bookings retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
