package listJourneys

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
)

type JourneysResponse struct {
	response.Response
	Journeys []models.Journey `json:"journeys"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JourneysGetter
type JourneysGetter interface {
	JourneysByCar(carID int) ([]models.Journey, error)
	JourneysByBranch(branchID int) ([]models.Journey, error)
	JourneysByUser(userID uuid.UUID) ([]models.Journey, error)
}

// New lists journeys filtered by exactly one of the car_id, branch_id or
// user_id query parameters.
func New(log *slog.Logger, journeys JourneysGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.journey.listJourneys.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpListJourneys) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		query := r.URL.Query()

		filters := 0
		for _, key := range []string{"car_id", "branch_id", "user_id"} {
			if query.Get(key) != "" {
				filters++
			}
		}
		if filters != 1 {
			log.Error("expected exactly one filter", slog.Int("filters", filters))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("specify exactly one of car_id, branch_id, user_id"))
			return
		}

		var (
			list []models.Journey
			err  error
		)

		switch {
		case query.Get("car_id") != "":
			var carID int
			carID, err = strconv.Atoi(query.Get("car_id"))
			if err != nil {
				log.Error("invalid car id format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid car id format"))
				return
			}
			list, err = journeys.JourneysByCar(carID)
		case query.Get("branch_id") != "":
			var branchID int
			branchID, err = strconv.Atoi(query.Get("branch_id"))
			if err != nil {
				log.Error("invalid branch id format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid branch id format"))
				return
			}
			list, err = journeys.JourneysByBranch(branchID)
		default:
			var userID uuid.UUID
			userID, err = uuid.Parse(query.Get("user_id"))
			if err != nil {
				log.Error("invalid user id format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid user id format"))
				return
			}
			list, err = journeys.JourneysByUser(userID)
		}

		if err != nil {
			log.Error("failed to get journeys", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get journeys"))
			return
		}

		log.Info("journeys retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, JourneysResponse{
			Response: response.OK(),
			Journeys: list,
		})
	}
}
