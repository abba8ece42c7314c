package createBranch

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
)

type BranchRequest struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

type BranchResponse struct {
	response.Response
	Branch models.Branch `json:"branch"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BranchCreator
type BranchCreator interface {
	CreateBranch(name, city string) (models.Branch, error)
}

func New(log *slog.Logger, branch BranchCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.branch.createBranch.New"

		log = log.With(slog.String("op", op))

		id, ok := identity.FromContext(r.Context())
		if !ok {
			log.Error("no identity in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if !rbac.Allowed(id.Role, rbac.OpCreateBranch) {
			log.Warn("operation forbidden for role", slog.String("role", string(id.Role)))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		var req BranchRequest

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

		created, err := branch.CreateBranch(req.Name, req.City)
		if err != nil {
			log.Error("failed to create branch", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create branch"))
			return
		}

		log.Info("branch created", slog.Int("branch_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BranchResponse{
			Response: response.OK(),
			Branch:   created,
		})
	}
}
