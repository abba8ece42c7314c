package models

// Car identifies a rentable vehicle. Identity is immutable; the branch
// assignment may change over the car's lifetime.
type Car struct {
	ID          int    `json:"id"`
	BranchID    int    `json:"branch_id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	PricePerDay int    `json:"price_per_day"`
}

// Branch is a rental location owning a fleet of cars.
type Branch struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
