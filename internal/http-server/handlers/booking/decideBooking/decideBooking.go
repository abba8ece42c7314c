package decideBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
	"carRental/internal/storage"
)

type DecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type DecisionResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDecider
type BookingDecider interface {
	DecideBooking(bookingID int, status models.BookingStatus) (models.Booking, error)
}

func New(log *slog.Logger, booking BookingDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.decideBooking.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpDecideBooking) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		bookingIDStr := chi.URLParam(r, "id")
		bookingID, err := strconv.Atoi(bookingIDStr)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		var req DecisionRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		decided, err := booking.DecideBooking(bookingID, models.BookingStatus(req.Status))
		if err != nil {
			log.Error("failed to decide booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, storage.ErrInvalidTransition):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("illegal booking status transition"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to decide booking"))
			}
			return
		}

		log.Info("booking decided", slog.String("status", req.Status))

		responseOK(w, r, decided)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.JSON(w, r, DecisionResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
