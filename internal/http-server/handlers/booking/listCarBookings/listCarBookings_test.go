package listCarBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carRental/internal/http-server/handlers/booking/listCarBookings/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
)

func TestListCarBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	adminID := uuid.MustParse("6f9619ff-8b86-4d01-b42d-00cf4fc964ff")

	bookings := []models.BookingDetails{
		{
			Booking: models.Booking{
				ID:       1,
				CarID:    5,
				UserID:   uuid.MustParse("11111111-2222-3333-4444-555555555555"),
				BranchID: 3,
				FromTime: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
				ToTime:   time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
				Status:   models.BookingPending,
			},
			CarBrand:   "Kia",
			CarModel:   "Rio",
			BranchName: "Airport",
		},
	}

	testCases := []struct {
		name           string
		roleHeader     string
		url            string
		mockSetup      func(mock *mocks.CarBookingsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "All statuses",
			roleHeader: "branch-admin",
			url:        "/cars/5/bookings",
			mockSetup: func(mock *mocks.CarBookingsGetter) {
				mock.On("BookingsByCar", 5, models.BookingStatus("")).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Rio")
			},
		},
		{
			name:       "Filtered by status",
			roleHeader: "super-admin",
			url:        "/cars/5/bookings?status=pending",
			mockSetup: func(mock *mocks.CarBookingsGetter) {
				mock.On("BookingsByCar", 5, models.BookingPending).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Unknown status",
			roleHeader:     "branch-admin",
			url:            "/cars/5/bookings?status=parked",
			mockSetup:      func(mock *mocks.CarBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "unknown booking status")
			},
		},
		{
			name:           "Regular user forbidden",
			roleHeader:     "regular-user",
			url:            "/cars/5/bookings",
			mockSetup:      func(mock *mocks.CarBookingsGetter) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "forbidden")
			},
		},
		{
			name:       "Storage error",
			roleHeader: "branch-admin",
			url:        "/cars/5/bookings",
			mockSetup: func(mock *mocks.CarBookingsGetter) {
				mock.On("BookingsByCar", 5, models.BookingStatus("")).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get bookings")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCarBookingsGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Get("/cars/{id}/bookings", New(logger, mockGetter))

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
