package endJourney

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

type EndRequest struct {
	EndTime time.Time `json:"end_time" validate:"required"`
}

type EndResponse struct {
	response.Response
	Journey models.Journey `json:"journey"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JourneyFinisher
type JourneyFinisher interface {
	EndJourney(journeyID int, userID uuid.UUID, endTime time.Time) (models.Journey, error)
}

func New(log *slog.Logger, journey JourneyFinisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.journey.endJourney.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpEndJourney) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		journeyID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid journey id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid journey id format"))
			return
		}

		log = log.With(slog.Int("journey_id", journeyID))

		var req EndRequest

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

		ended, err := journey.EndJourney(journeyID, id.UserID, req.EndTime)
		if err != nil {
			log.Error("failed to end journey", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrJourneyNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no open journey with this id"))
			case errors.Is(err, storage.ErrJourneyNotOwned):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("journey belongs to another user"))
			case errors.Is(err, storage.ErrInvalidInterval):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("end time must be after start time"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to end journey"))
			}
			return
		}

		log.Info("journey ended", slog.Int("final_price", *ended.FinalPrice))

		responseOK(w, r, ended)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, journey models.Journey) {
	render.JSON(w, r, EndResponse{
		Response: response.OK(),
		Journey:  journey,
	})
}
