package listBranchBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carRental/internal/http-server/handlers/booking/listBranchBookings/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
)

func TestListBranchBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	adminID := uuid.MustParse("2d5bd5f9-67b3-4b42-9a29-a33c4bd11ab0")

	testCases := []struct {
		name           string
		roleHeader     string
		url            string
		mockSetup      func(mock *mocks.BranchBookingsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Success with status filter",
			roleHeader: "branch-admin",
			url:        "/branches/4/bookings?status=approved",
			mockSetup: func(mock *mocks.BranchBookingsGetter) {
				mock.On("BookingsByBranch", 4, models.BookingApproved).
					Return([]models.BookingDetails{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:       "Success without status filter",
			roleHeader: "branch-admin",
			url:        "/branches/4/bookings",
			mockSetup: func(mock *mocks.BranchBookingsGetter) {
				mock.On("BookingsByBranch", 4, models.BookingStatus("")).
					Return([]models.BookingDetails{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Unknown status",
			roleHeader:     "branch-admin",
			url:            "/branches/4/bookings?status=bogus",
			mockSetup:      func(mock *mocks.BranchBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"unknown booking status"`)
			},
		},
		{
			name:           "Invalid branch id",
			roleHeader:     "branch-admin",
			url:            "/branches/abc/bookings",
			mockSetup:      func(mock *mocks.BranchBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"invalid branch id format"`)
			},
		},
		{
			name:           "Forbidden for regular user",
			roleHeader:     "regular-user",
			url:            "/branches/4/bookings",
			mockSetup:      func(mock *mocks.BranchBookingsGetter) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"forbidden"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewBranchBookingsGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Get("/branches/{id}/bookings", New(logger, mockGetter))

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			req.Header.Set(identity.HeaderUserID, adminID.String())
			req.Header.Set(identity.HeaderUserRole, tc.roleHeader)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
