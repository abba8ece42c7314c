package deleteBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/rbac"
	"carRental/internal/storage"
)

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(bookingID int) error
}

func New(log *slog.Logger, booking BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpDeleteBooking) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		if err = booking.DeleteBooking(bookingID); err != nil {
			log.Error("failed to delete booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted", slog.Int("booking_id", bookingID))

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
