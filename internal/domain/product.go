package domain

import "time"

type Product struct {
	ID          string
	ScopeID     string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
