package startJourney

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
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

type StartRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
}

type StartResponse struct {
	response.Response
	Journey models.Journey `json:"journey"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JourneyStarter
type JourneyStarter interface {
	StartJourney(carID int, userID uuid.UUID, startTime time.Time) (models.Journey, error)
}

func New(log *slog.Logger, journey JourneyStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.journey.startJourney.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpStartJourney) {
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

		log = log.With(slog.Int("car_id", carID))

		var req StartRequest

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

		started, err := journey.StartJourney(carID, id.UserID, req.StartTime)
		if err != nil {
			log.Error("failed to start journey", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrCarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("car not found"))
			case errors.Is(err, storage.ErrOpenJourneyExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("car already has an open journey"))
			case errors.Is(err, storage.ErrNoApprovedBooking):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no approved booking for this car"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to start journey"))
			}
			return
		}

		log.Info("journey started", slog.Int("journey_id", started.ID))

		responseOK(w, r, started)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, journey models.Journey) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, StartResponse{
		Response: response.OK(),
		Journey:  journey,
	})
}
