package listCars

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
)

type CarsResponse struct {
	response.Response
	Cars []models.Car `json:"cars"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarsGetter
type CarsGetter interface {
	Cars(branchID int) ([]models.Car, error)
}

// New lists cars, optionally narrowed to one branch with ?branch_id=.
func New(log *slog.Logger, cars CarsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.car.listCars.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpListCars) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		branchID := 0
		if raw := r.URL.Query().Get("branch_id"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				log.Error("invalid branch id", slog.String("branch_id", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid branch id"))
				return
			}
			branchID = parsed
		}

		list, err := cars.Cars(branchID)
		if err != nil {
			log.Error("failed to list cars", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list cars"))
			return
		}

		log.Info("cars listed", slog.Int("count", len(list)))

		render.JSON(w, r, CarsResponse{
			Response: response.OK(),
			Cars:     list,
		})
	}
}
