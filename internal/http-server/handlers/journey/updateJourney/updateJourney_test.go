package updateJourney

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

	"carRental/internal/http-server/handlers/journey/updateJourney/mocks"
	"carRental/internal/http-server/middleware/identity"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/storage"
	"carRental/internal/storage/postgres"
)

func TestUpdateJourneyHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	adminID := uuid.MustParse("2d5bd5f9-67b3-4b42-9a29-a33c4bd11ab0")

	newCarID := 3
	startTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		roleHeader     string
		journeyID      string
		requestBody    string
		mockSetup      func(mock *mocks.JourneyUpdater)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Partial update keeps omitted fields",
			roleHeader:  "branch-admin",
			journeyID:   "9",
			requestBody: `{"car_id": 3}`,
			mockSetup: func(mock *mocks.JourneyUpdater) {
				mock.On("UpdateJourney", 9, postgres.UpdateJourneyParams{CarID: &newCarID}).
					Return(models.Journey{ID: 9, CarID: 3, StartTime: startTime}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"car_id":3`)
			},
		},
		{
			name:           "Forbidden for regular user",
			roleHeader:     "regular-user",
			journeyID:      "9",
			requestBody:    `{"car_id": 3}`,
			mockSetup:      func(mock *mocks.JourneyUpdater) {},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"forbidden"`)
			},
		},
		{
			name:        "Not found",
			roleHeader:  "super-admin",
			journeyID:   "9",
			requestBody: `{"car_id": 3}`,
			mockSetup: func(mock *mocks.JourneyUpdater) {
				mock.On("UpdateJourney", 9, postgres.UpdateJourneyParams{CarID: &newCarID}).
					Return(models.Journey{}, storage.ErrJourneyNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"journey not found"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewJourneyUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Use(identity.New(logger))
			router.Patch("/journeys/{id}", New(logger, mockUpdater))

			req, err := http.NewRequest("PATCH", "/journeys/"+tc.journeyID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			req.Header.Set(identity.HeaderUserID, adminID.String())
			req.Header.Set(identity.HeaderUserRole, tc.roleHeader)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockUpdater.AssertExpectations(t)
		})
	}
}
