package deleteJourney

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JourneyDeleter
type JourneyDeleter interface {
	DeleteJourney(journeyID int) error
}

func New(log *slog.Logger, journey JourneyDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.journey.deleteJourney.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpDeleteJourney) {
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

		if err = journey.DeleteJourney(journeyID); err != nil {
			log.Error("failed to delete journey", sl.Err(err))

			if errors.Is(err, storage.ErrJourneyNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("journey not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete journey"))
			return
		}

		log.Info("journey deleted", slog.Int("journey_id", journeyID))

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
