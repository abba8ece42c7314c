// Package rbac is the role policy gate: a single static table mapping each
// operation to the set of roles allowed to invoke it. Handlers consult
// Allowed before touching storage and translate a false result into an HTTP
// 403; the gate itself never errors and has no side effects.
package rbac

import "carRental/internal/models"

type Operation string

const (
	OpCreateBooking       Operation = "booking.create"
	OpDecideBooking       Operation = "booking.decide"
	OpDeleteBooking       Operation = "booking.delete"
	OpListPendingBookings Operation = "booking.list_pending"
	OpListOwnBookings     Operation = "booking.list_own"
	OpListBranchBookings  Operation = "booking.list_branch"
	OpListCarBookings     Operation = "booking.list_car"

	OpStartJourney  Operation = "journey.start"
	OpEndJourney    Operation = "journey.end"
	OpUpdateJourney Operation = "journey.update"
	OpDeleteJourney Operation = "journey.delete"
	OpListJourneys  Operation = "journey.list"

	OpCreateCar    Operation = "car.create"
	OpListCars     Operation = "car.list"
	OpCreateBranch Operation = "branch.create"
)

var (
	admins        = []models.Role{models.RoleBranchAdmin, models.RoleSuperAdmin}
	regularOnly   = []models.Role{models.RoleUser}
	authenticated = []models.Role{models.RoleUser, models.RoleBranchAdmin, models.RoleSuperAdmin}
)

// policy is the single source of truth for authorization. Operations and
// roles outside the table are denied.
var policy = map[Operation][]models.Role{
	OpCreateBooking:       regularOnly,
	OpDecideBooking:       admins,
	OpDeleteBooking:       admins,
	OpListPendingBookings: admins,
	OpListOwnBookings:     regularOnly,
	OpListBranchBookings:  admins,
	OpListCarBookings:     admins,

	OpStartJourney:  regularOnly,
	OpEndJourney:    regularOnly,
	OpUpdateJourney: admins,
	OpDeleteJourney: admins,
	OpListJourneys:  authenticated,

	OpCreateCar:    admins,
	OpListCars:     authenticated,
	OpCreateBranch: {models.RoleSuperAdmin},
}

// Allowed reports whether role may invoke op.
func Allowed(role models.Role, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
