package deleteBooking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carRental/internal/http-server/handlers/booking/deleteBooking/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/storage"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	adminID := uuid.MustParse("2d5bd5f9-67b3-4b42-9a29-a33c4bd11ab0")

	testCases := []struct {
		name           string
		roleHeader     string
		bookingID      string
		mockSetup      func(mock *mocks.BookingDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "Success",
			roleHeader: "branch-admin",
			bookingID:  "3",
			mockSetup: func(mock *mocks.BookingDeleter) {
				mock.On("DeleteBooking", 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Forbidden for regular user",
			roleHeader:     "regular-user",
			bookingID:      "3",
			mockSetup:      func(mock *mocks.BookingDeleter) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:       "Not found",
			roleHeader: "super-admin",
			bookingID:  "3",
			mockSetup: func(mock *mocks.BookingDeleter) {
				mock.On("DeleteBooking", 3).Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:       "Internal error",
			roleHeader: "branch-admin",
			bookingID:  "3",
			mockSetup: func(mock *mocks.BookingDeleter) {
				mock.On("DeleteBooking", 3).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Delete("/bookings/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			req.Header.Set(identity.HeaderUserID, adminID.String())
			req.Header.Set(identity.HeaderUserRole, tc.roleHeader)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())

			mockDeleter.AssertExpectations(t)
		})
	}
}
