package startJourney

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carRental/internal/http-server/handlers/journey/startJourney/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/storage"
)

func TestStartJourneyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	userID := uuid.MustParse("6f9619ff-8b86-4d01-b42d-00cf4fc964ff")
	startTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		roleHeader     string
		carID          string
		requestBody    string
		mockSetup      func(mock *mocks.JourneyStarter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			roleHeader:  "regular-user",
			carID:       "1",
			requestBody: `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyStarter) {
				mock.On("StartJourney", 1, userID, startTime).Return(models.Journey{
					ID:        9,
					CarID:     1,
					UserID:    userID,
					BookingID: 5,
					StartTime: startTime,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"booking_id":5`)
			},
		},
		{
			name:           "Forbidden for admin",
			roleHeader:     "branch-admin",
			carID:          "1",
			requestBody:    `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup:      func(mock *mocks.JourneyStarter) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:           "Invalid car id",
			roleHeader:     "regular-user",
			carID:          "abc",
			requestBody:    `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup:      func(mock *mocks.JourneyStarter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid car id format"}`,
		},
		{
			name:           "Missing start_time",
			roleHeader:     "regular-user",
			carID:          "1",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.JourneyStarter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "StartTime")
			},
		},
		{
			name:        "Car not found",
			roleHeader:  "regular-user",
			carID:       "1",
			requestBody: `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyStarter) {
				mock.On("StartJourney", 1, userID, startTime).
					Return(models.Journey{}, storage.ErrCarNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"car not found"}`,
		},
		{
			name:        "Open journey exists",
			roleHeader:  "regular-user",
			carID:       "1",
			requestBody: `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyStarter) {
				mock.On("StartJourney", 1, userID, startTime).
					Return(models.Journey{}, storage.ErrOpenJourneyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"car already has an open journey"}`,
		},
		{
			name:        "No approved booking",
			roleHeader:  "regular-user",
			carID:       "1",
			requestBody: `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyStarter) {
				mock.On("StartJourney", 1, userID, startTime).
					Return(models.Journey{}, storage.ErrNoApprovedBooking)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no approved booking for this car"}`,
		},
		{
			name:        "Internal error",
			roleHeader:  "regular-user",
			carID:       "1",
			requestBody: `{"start_time": "2024-01-10T09:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyStarter) {
				mock.On("StartJourney", 1, userID, startTime).
					Return(models.Journey{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to start journey"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockStarter := mocks.NewJourneyStarter(t)
			tc.mockSetup(mockStarter)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Post("/cars/{id}/journeys", New(logger, mockStarter))

			url := "/cars/" + tc.carID + "/journeys"
			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			req.Header.Set(identity.HeaderUserID, userID.String())
			req.Header.Set(identity.HeaderUserRole, tc.roleHeader)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockStarter.AssertExpectations(t)
		})
	}
}
