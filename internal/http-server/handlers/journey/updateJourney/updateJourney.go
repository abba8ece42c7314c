package updateJourney

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
	"carRental/internal/storage"
	"carRental/internal/storage/postgres"
)

// UpdateRequest carries the optional journey fields. An omitted field keeps
// its stored value.
type UpdateRequest struct {
	CarID      *int       `json:"car_id"`
	UserID     *uuid.UUID `json:"user_id"`
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	FinalPrice *int       `json:"final_price"`
}

type UpdateResponse struct {
	response.Response
	Journey models.Journey `json:"journey"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JourneyUpdater
type JourneyUpdater interface {
	UpdateJourney(journeyID int, params postgres.UpdateJourneyParams) (models.Journey, error)
}

func New(log *slog.Logger, journey JourneyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.journey.updateJourney.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpUpdateJourney) {
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

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Int("journey_id", journeyID))

		updated, err := journey.UpdateJourney(journeyID, postgres.UpdateJourneyParams{
			CarID:      req.CarID,
			UserID:     req.UserID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			FinalPrice: req.FinalPrice,
		})
		if err != nil {
			log.Error("failed to update journey", sl.Err(err))

			if errors.Is(err, storage.ErrJourneyNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("journey not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update journey"))
			return
		}

		log.Info("journey updated", slog.Int("journey_id", updated.ID))

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Journey:  updated,
		})
	}
}
