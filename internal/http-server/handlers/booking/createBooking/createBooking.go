package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
	"carRental/internal/storage"
)

type BookingRequest struct {
	CarID int       `json:"car_id" validate:"required"`
	From  time.Time `json:"from" validate:"required"`
	To    time.Time `json:"to" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(carID int, userID uuid.UUID, from, to time.Time) (models.Booking, error)
}

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpCreateBooking) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
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

		if !(models.Interval{From: req.From, To: req.To}).Valid() {
			log.Error("invalid interval", slog.Time("from", req.From), slog.Time("to", req.To))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("from must be before to"))
			return
		}

		created, err := booking.CreateBooking(req.CarID, id.UserID, req.From, req.To)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrCarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("car not found"))
			case errors.Is(err, storage.ErrIntervalConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("interval overlaps an approved booking"))
			case errors.Is(err, storage.ErrDuplicateBooking):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("identical booking already exists"))
			case errors.Is(err, storage.ErrApprovedBookingExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already holds an approved booking for this car"))
			case errors.Is(err, storage.ErrInvalidInterval):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("from must be before to"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int("booking_id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
