package domain

import (
	"time"
)

// Shift assigns one employee to one template slot of one group on one date.
// Dates are "YYYY-MM-DD" strings, compared by exact equality everywhere.
type Shift struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	EmployeeID         string    `json:"employeeId"`
	ResidentialGroupID string    `json:"residentialGroupId"`
	ShiftTemplateID    string    `json:"shiftTemplateId"`
	CustomStartTime    *string   `json:"customStartTime"`
	CustomEndTime      *string   `json:"customEndTime"`
	Notes              string    `json:"notes"`
	IsConfirmed        bool      `json:"isConfirmed"`
	CreatedAt          time.Time `json:"createdAt"`
}
