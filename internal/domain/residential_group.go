package domain

import (
	"time"
)

// ResidentialGroup is a Wohngruppe, the unit a day plan is drawn up for.
type ResidentialGroup struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
