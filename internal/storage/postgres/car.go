package postgres

import (
	"fmt"

	"carRental/internal/models"
	"carRental/internal/storage"
)

// CreateCar registers a car in a branch's fleet.
func (s *Storage) CreateCar(branchID int, brand, model string, pricePerDay int) (models.Car, error) {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM branches WHERE id = $1)`, branchID).Scan(&exists)
	if err != nil {
		return models.Car{}, fmt.Errorf("failed to check branch: %w", err)
	}

	if !exists {
		return models.Car{}, storage.ErrBranchNotFound
	}

	car := models.Car{
		BranchID:    branchID,
		Brand:       brand,
		Model:       model,
		PricePerDay: pricePerDay,
	}

	query := `
		INSERT INTO cars (branch_id, brand, model, price_per_day)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err = s.DB.QueryRow(query, branchID, brand, model, pricePerDay).Scan(&car.ID)
	if err != nil {
		return models.Car{}, fmt.Errorf("failed to create car: %w", err)
	}

	return car, nil
}

// Cars lists the fleet. A branchID of zero means every branch.
func (s *Storage) Cars(branchID int) ([]models.Car, error) {
	query := `
		SELECT id, branch_id, brand, model, price_per_day
		FROM cars
		ORDER BY id`
	args := []any{}

	if branchID != 0 {
		query = `
		SELECT id, branch_id, brand, model, price_per_day
		FROM cars
		WHERE branch_id = $1
		ORDER BY id`
		args = append(args, branchID)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []models.Car
	for rows.Next() {
		var c models.Car
		if err = rows.Scan(&c.ID, &c.BranchID, &c.Brand, &c.Model, &c.PricePerDay); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cars: %w", err)
	}

	return cars, nil
}

// CreateBranch registers a rental location.
func (s *Storage) CreateBranch(name, city string) (models.Branch, error) {
	branch := models.Branch{Name: name, City: city}

	query := `
		INSERT INTO branches (name, city)
		VALUES ($1, $2)
		RETURNING id`

	err := s.DB.QueryRow(query, name, city).Scan(&branch.ID)
	if err != nil {
		return models.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return branch, nil
}
