package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"carRental/internal/models"
	"carRental/internal/storage"
)

// CreateBooking admits a new booking request for the half-open interval
// [from, to) and inserts it in the pending state. The car row is locked
// for the duration of the transaction, so the overlap and duplicate checks
// and the insert form one atomic unit per car.
func (s *Storage) CreateBooking(carID int, userID uuid.UUID, from, to time.Time) (models.Booking, error) {
	candidate := models.Interval{From: from, To: to}
	if !candidate.Valid() {
		return models.Booking{}, storage.ErrInvalidInterval
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var branchID int
	err = tx.QueryRow(`SELECT branch_id FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&branchID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, storage.ErrCarNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to lock car: %w", err)
	}

	var duplicate bool
	dupQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE car_id = $1 AND user_id = $2 AND from_time = $3 AND to_time = $4
		)`

	err = tx.QueryRow(dupQuery, carID, userID, from, to).Scan(&duplicate)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to check duplicate booking: %w", err)
	}

	if duplicate {
		return models.Booking{}, storage.ErrDuplicateBooking
	}

	var alreadyApproved bool
	approvedQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE car_id = $1 AND user_id = $2 AND status = $3
		)`

	err = tx.QueryRow(approvedQuery, carID, userID, models.BookingApproved).Scan(&alreadyApproved)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to check approved booking: %w", err)
	}

	if alreadyApproved {
		return models.Booking{}, storage.ErrApprovedBookingExists
	}

	rows, err := tx.Query(
		`SELECT from_time, to_time FROM bookings WHERE car_id = $1 AND status = $2`,
		carID, models.BookingApproved,
	)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load approved bookings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing models.Interval
		if err = rows.Scan(&existing.From, &existing.To); err != nil {
			return models.Booking{}, fmt.Errorf("failed to scan approved booking: %w", err)
		}

		if candidate.Overlaps(existing) {
			return models.Booking{}, storage.ErrIntervalConflict
		}
	}
	if err = rows.Err(); err != nil {
		return models.Booking{}, fmt.Errorf("error iterating approved bookings: %w", err)
	}

	booking := models.Booking{
		CarID:    carID,
		UserID:   userID,
		BranchID: branchID,
		FromTime: from,
		ToTime:   to,
		Status:   models.BookingPending,
	}

	insertQuery := `
		INSERT INTO bookings (car_id, user_id, branch_id, from_time, to_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err = tx.QueryRow(insertQuery, carID, userID, branchID, from, to, models.BookingPending).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

// DecideBooking moves a booking to the target status. Re-issuing the
// decision with the booking's current status rewrites it and is not an
// error; any other move not in the lifecycle table fails with
// ErrInvalidTransition. Approving a booking rejects every pending booking
// on the same car whose interval overlaps the approved one, within the
// same transaction.
func (s *Storage) DecideBooking(bookingID int, target models.BookingStatus) (models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var carID int
	err = tx.QueryRow(`SELECT car_id FROM bookings WHERE id = $1`, bookingID).Scan(&carID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to fetch booking: %w", err)
	}

	// Decisions on one car serialize on the car row, in the same lock
	// order as CreateBooking and StartJourney; without it two concurrent
	// approvals of overlapping bookings deadlock on each other's cascade
	// updates.
	err = tx.QueryRow(`SELECT id FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&carID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to lock car: %w", err)
	}

	fetchQuery := `
		SELECT id, car_id, user_id, branch_id, from_time, to_time, status, bill, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	booking, err := scanBooking(tx.QueryRow(fetchQuery, bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if booking.Status != target && !booking.Status.CanTransition(target) {
		return models.Booking{}, storage.ErrInvalidTransition
	}

	_, err = tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, target, bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking status: %w", err)
	}

	if target == models.BookingApproved {
		// Competing pending requests that can no longer be satisfied are
		// rejected here. Non-overlapping pending bookings stay untouched.
		rejectQuery := `
			UPDATE bookings
			SET status = $1
			WHERE car_id = $2
			  AND id <> $3
			  AND status = $4
			  AND from_time < $5
			  AND $6 < to_time`

		_, err = tx.Exec(rejectQuery,
			models.BookingRejected, booking.CarID, bookingID,
			models.BookingPending, booking.ToTime, booking.FromTime,
		)
		if err != nil {
			return models.Booking{}, fmt.Errorf("failed to reject overlapping bookings: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit decision: %w", err)
	}

	booking.Status = target

	return booking, nil
}

// DeleteBooking removes a booking.
func (s *Storage) DeleteBooking(bookingID int) error {
	result, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

const bookingDetailsQuery = `
	SELECT b.id, b.car_id, b.user_id, b.branch_id, b.from_time, b.to_time,
	       b.status, b.bill, b.created_at, c.brand, c.model, br.name
	FROM bookings b
	JOIN cars c ON c.id = b.car_id
	JOIN branches br ON br.id = b.branch_id`

// PendingBookings lists every booking awaiting a decision, oldest first.
func (s *Storage) PendingBookings() ([]models.BookingDetails, error) {
	query := bookingDetailsQuery + `
	WHERE b.status = $1
	ORDER BY b.created_at`

	return s.queryBookingDetails(query, models.BookingPending)
}

// BookingsByUser lists a user's bookings, newest first.
func (s *Storage) BookingsByUser(userID uuid.UUID) ([]models.BookingDetails, error) {
	query := bookingDetailsQuery + `
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC`

	return s.queryBookingDetails(query, userID)
}

// BookingsByBranch lists a branch's bookings, optionally filtered by
// status. An empty status means all statuses.
func (s *Storage) BookingsByBranch(branchID int, status models.BookingStatus) ([]models.BookingDetails, error) {
	if status == "" {
		query := bookingDetailsQuery + `
	WHERE b.branch_id = $1
	ORDER BY b.created_at DESC`

		return s.queryBookingDetails(query, branchID)
	}

	query := bookingDetailsQuery + `
	WHERE b.branch_id = $1 AND b.status = $2
	ORDER BY b.created_at DESC`

	return s.queryBookingDetails(query, branchID, status)
}

// BookingsByCar lists a car's bookings, optionally filtered by status.
func (s *Storage) BookingsByCar(carID int, status models.BookingStatus) ([]models.BookingDetails, error) {
	if status == "" {
		query := bookingDetailsQuery + `
	WHERE b.car_id = $1
	ORDER BY b.from_time`

		return s.queryBookingDetails(query, carID)
	}

	query := bookingDetailsQuery + `
	WHERE b.car_id = $1 AND b.status = $2
	ORDER BY b.from_time`

	return s.queryBookingDetails(query, carID, status)
}

func (s *Storage) queryBookingDetails(query string, args ...any) ([]models.BookingDetails, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetails
	for rows.Next() {
		var b models.BookingDetails
		err = rows.Scan(
			&b.ID, &b.CarID, &b.UserID, &b.BranchID, &b.FromTime, &b.ToTime,
			&b.Status, &b.Bill, &b.CreatedAt, &b.CarBrand, &b.CarModel, &b.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.CarID, &b.UserID, &b.BranchID, &b.FromTime, &b.ToTime,
		&b.Status, &b.Bill, &b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}

	return b, nil
}
