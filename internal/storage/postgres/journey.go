package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carRental/internal/models"
	"carRental/internal/storage"
)

// StartJourney opens a usage session for a car. The car row is locked so
// two concurrent starts cannot both pass the open-journey check. The caller
// must hold an approved booking for the car; that booking moves to started
// and the journey records its id.
func (s *Storage) StartJourney(carID int, userID uuid.UUID, startTime time.Time) (models.Journey, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int
	err = tx.QueryRow(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&lockedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Journey{}, storage.ErrCarNotFound
		}
		return models.Journey{}, fmt.Errorf("failed to lock car: %w", err)
	}

	var open bool
	err = tx.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM journeys WHERE car_id = $1 AND end_time IS NULL)`,
		carID,
	).Scan(&open)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to check open journey: %w", err)
	}

	if open {
		return models.Journey{}, storage.ErrOpenJourneyExists
	}

	var bookingID int
	bookingQuery := `
		SELECT id FROM bookings
		WHERE car_id = $1 AND user_id = $2 AND status = $3
		ORDER BY from_time
		LIMIT 1`

	err = tx.QueryRow(bookingQuery, carID, userID, models.BookingApproved).Scan(&bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Journey{}, storage.ErrNoApprovedBooking
		}
		return models.Journey{}, fmt.Errorf("failed to find approved booking: %w", err)
	}

	_, err = tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, models.BookingStarted, bookingID)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to start booking: %w", err)
	}

	journey := models.Journey{
		CarID:     carID,
		UserID:    userID,
		BookingID: bookingID,
		StartTime: startTime,
	}

	insertQuery := `
		INSERT INTO journeys (car_id, user_id, booking_id, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = tx.QueryRow(insertQuery, carID, userID, bookingID, startTime).Scan(&journey.ID)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to create journey: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Journey{}, fmt.Errorf("failed to commit journey: %w", err)
	}

	return journey, nil
}

// EndJourney closes an open journey: stamps the end time, charges the
// final price through the configured pricer and completes the linked
// booking. Only the user who started the journey may end it.
func (s *Storage) EndJourney(journeyID int, userID uuid.UUID, endTime time.Time) (models.Journey, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var journey models.Journey
	fetchQuery := `
		SELECT id, car_id, user_id, booking_id, start_time
		FROM journeys
		WHERE id = $1 AND end_time IS NULL
		FOR UPDATE`

	err = tx.QueryRow(fetchQuery, journeyID).Scan(
		&journey.ID, &journey.CarID, &journey.UserID, &journey.BookingID, &journey.StartTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Journey{}, storage.ErrJourneyNotFound
		}
		return models.Journey{}, fmt.Errorf("failed to fetch journey: %w", err)
	}

	if journey.UserID != userID {
		return models.Journey{}, storage.ErrJourneyNotOwned
	}

	if !endTime.After(journey.StartTime) {
		return models.Journey{}, storage.ErrInvalidInterval
	}

	var car models.Car
	err = tx.QueryRow(
		`SELECT id, branch_id, brand, model, price_per_day FROM cars WHERE id = $1`,
		journey.CarID,
	).Scan(&car.ID, &car.BranchID, &car.Brand, &car.Model, &car.PricePerDay)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to fetch car: %w", err)
	}

	journey.EndTime = &endTime
	price := s.pricer.FinalPrice(journey, car)
	journey.FinalPrice = &price

	_, err = tx.Exec(
		`UPDATE journeys SET end_time = $1, final_price = $2 WHERE id = $3`,
		endTime, price, journeyID,
	)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to close journey: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE bookings SET status = $1, bill = $2 WHERE id = $3 AND status = $4`,
		models.BookingCompleted, price, journey.BookingID, models.BookingStarted,
	)
	if err != nil {
		return models.Journey{}, fmt.Errorf("failed to complete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Journey{}, fmt.Errorf("failed to commit journey end: %w", err)
	}

	return journey, nil
}

// UpdateJourneyParams carries the optional fields of an admin journey
// update. A nil field keeps the stored value.
type UpdateJourneyParams struct {
	CarID      *int
	UserID     *uuid.UUID
	StartTime  *time.Time
	EndTime    *time.Time
	FinalPrice *int
}

// UpdateJourney merges the given fields into an existing journey.
func (s *Storage) UpdateJourney(journeyID int, params UpdateJourneyParams) (models.Journey, error) {
	var userID uuid.NullUUID
	if params.UserID != nil {
		userID = uuid.NullUUID{UUID: *params.UserID, Valid: true}
	}

	query := `
		UPDATE journeys
		SET car_id      = COALESCE($2, car_id),
		    user_id     = COALESCE($3, user_id),
		    start_time  = COALESCE($4, start_time),
		    end_time    = COALESCE($5, end_time),
		    final_price = COALESCE($6, final_price)
		WHERE id = $1
		RETURNING id, car_id, user_id, booking_id, start_time, end_time, final_price`

	var journey models.Journey
	err := s.DB.QueryRow(query,
		journeyID, params.CarID, userID, params.StartTime, params.EndTime, params.FinalPrice,
	).Scan(
		&journey.ID, &journey.CarID, &journey.UserID, &journey.BookingID,
		&journey.StartTime, &journey.EndTime, &journey.FinalPrice,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Journey{}, storage.ErrJourneyNotFound
		}
		return models.Journey{}, fmt.Errorf("failed to update journey: %w", err)
	}

	return journey, nil
}

// DeleteJourney removes a journey.
func (s *Storage) DeleteJourney(journeyID int) error {
	result, err := s.DB.Exec(`DELETE FROM journeys WHERE id = $1`, journeyID)
	if err != nil {
		return fmt.Errorf("failed to delete journey: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrJourneyNotFound
	}

	return nil
}

const journeyColumns = `j.id, j.car_id, j.user_id, j.booking_id, j.start_time, j.end_time, j.final_price`

// JourneysByCar lists a car's journeys, most recent first.
func (s *Storage) JourneysByCar(carID int) ([]models.Journey, error) {
	query := `
		SELECT ` + journeyColumns + `
		FROM journeys j
		WHERE j.car_id = $1
		ORDER BY j.start_time DESC`

	return s.queryJourneys(query, carID)
}

// JourneysByBranch lists journeys for every car currently assigned to the
// branch, most recent first.
func (s *Storage) JourneysByBranch(branchID int) ([]models.Journey, error) {
	query := `
		SELECT ` + journeyColumns + `
		FROM journeys j
		JOIN cars c ON c.id = j.car_id
		WHERE c.branch_id = $1
		ORDER BY j.start_time DESC`

	return s.queryJourneys(query, branchID)
}

// JourneysByUser lists a user's journeys, most recent first.
func (s *Storage) JourneysByUser(userID uuid.UUID) ([]models.Journey, error) {
	query := `
		SELECT ` + journeyColumns + `
		FROM journeys j
		WHERE j.user_id = $1
		ORDER BY j.start_time DESC`

	return s.queryJourneys(query, userID)
}

func (s *Storage) queryJourneys(query string, args ...any) ([]models.Journey, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer rows.Close()

	var journeys []models.Journey
	for rows.Next() {
		var j models.Journey
		err = rows.Scan(
			&j.ID, &j.CarID, &j.UserID, &j.BookingID,
			&j.StartTime, &j.EndTime, &j.FinalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journeys: %w", err)
	}

	return journeys, nil
}
