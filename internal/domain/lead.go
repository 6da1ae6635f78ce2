package domain

import "time"

type Lead struct {
	ID             string
	ScopeID        string
	Name           string
	Phone          string
	Status         string
	Classification string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
