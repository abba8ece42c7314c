package endJourney

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

	"carRental/internal/http-server/handlers/journey/endJourney/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/storage"
)

func TestEndJourneyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	userID := uuid.MustParse("6f9619ff-8b86-4d01-b42d-00cf4fc964ff")
	startTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	endTime := time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC)
	price := 240

	closed := models.Journey{
		ID:         9,
		CarID:      1,
		UserID:     userID,
		BookingID:  5,
		StartTime:  startTime,
		EndTime:    &endTime,
		FinalPrice: &price,
	}

	testCases := []struct {
		name           string
		roleHeader     string
		journeyID      string
		requestBody    string
		mockSetup      func(mock *mocks.JourneyFinisher)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			roleHeader:  "regular-user",
			journeyID:   "9",
			requestBody: `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyFinisher) {
				mock.On("EndJourney", 9, userID, endTime).Return(closed, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"final_price":240`)
				assert.Contains(t, body, `"end_time"`)
			},
		},
		{
			name:           "Forbidden for admin",
			roleHeader:     "super-admin",
			journeyID:      "9",
			requestBody:    `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup:      func(mock *mocks.JourneyFinisher) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:           "Missing end_time",
			roleHeader:     "regular-user",
			journeyID:      "9",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.JourneyFinisher) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "EndTime")
			},
		},
		{
			name:        "No open journey",
			roleHeader:  "regular-user",
			journeyID:   "9",
			requestBody: `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyFinisher) {
				mock.On("EndJourney", 9, userID, endTime).
					Return(models.Journey{}, storage.ErrJourneyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"no open journey with this id"}`,
		},
		{
			name:        "Journey owned by someone else",
			roleHeader:  "regular-user",
			journeyID:   "9",
			requestBody: `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyFinisher) {
				mock.On("EndJourney", 9, userID, endTime).
					Return(models.Journey{}, storage.ErrJourneyNotOwned)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"journey belongs to another user"}`,
		},
		{
			name:        "End before start",
			roleHeader:  "regular-user",
			journeyID:   "9",
			requestBody: `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyFinisher) {
				mock.On("EndJourney", 9, userID, endTime).
					Return(models.Journey{}, storage.ErrInvalidInterval)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"end time must be after start time"}`,
		},
		{
			name:        "Internal error",
			roleHeader:  "regular-user",
			journeyID:   "9",
			requestBody: `{"end_time": "2024-01-11T18:00:00Z"}`,
			mockSetup: func(mock *mocks.JourneyFinisher) {
				mock.On("EndJourney", 9, userID, endTime).
					Return(models.Journey{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to end journey"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockFinisher := mocks.NewJourneyFinisher(t)
			tc.mockSetup(mockFinisher)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Post("/journeys/{id}/end", New(logger, mockFinisher))

			url := "/journeys/" + tc.journeyID + "/end"
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

			mockFinisher.AssertExpectations(t)
		})
	}
}
