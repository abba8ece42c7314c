package listCarBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarBookingsGetter
type CarBookingsGetter interface {
	BookingsByCar(carID int, status models.BookingStatus) ([]models.BookingDetails, error)
}

// New lists a car's bookings, optionally filtered by the ?status= query
// parameter.
func New(log *slog.Logger, bookings CarBookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listCarBookings.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpListCarBookings) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		carID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid car id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid car id format"))
			return
		}

		var status models.BookingStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			status, ok = models.ParseBookingStatus(raw)
			if !ok {
				log.Error("unknown booking status", slog.String("status", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown booking status"))
				return
			}
		}

		list, err := bookings.BookingsByCar(carID, status)
		if err != nil {
			log.Error("failed to get car bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("car bookings retrieved",
			slog.Int("car_id", carID),
			slog.Int("count", len(list)),
		)

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
