package createCar

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rbac"
	"carRental/internal/storage"
)

type CarRequest struct {
	BranchID    int    `json:"branch_id" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	PricePerDay int    `json:"price_per_day" validate:"required,gt=0"`
}

type CarResponse struct {
	response.Response
	Car models.Car `json:"car"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarCreator
type CarCreator interface {
	CreateCar(branchID int, brand, model string, pricePerDay int) (models.Car, error)
}

func New(log *slog.Logger, car CarCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.car.createCar.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpCreateCar) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		var req CarRequest

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

		created, err := car.CreateCar(req.BranchID, req.Brand, req.Model, req.PricePerDay)
		if err != nil {
			log.Error("failed to create car", sl.Err(err))

			if errors.Is(err, storage.ErrBranchNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("branch not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create car"))
			return
		}

		log.Info("car created", slog.Int("car_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CarResponse{
			Response: response.OK(),
			Car:      created,
		})
	}
}
