package domain

import (
	"time"
)

// ShiftTemplate defines a recurring shift slot such as Früh, Spät or Nacht.
// Start and end are "HH:MM" clock times. A night shift may end before it
// starts (22:00 to 06:00), so no ordering is required between the two.
type ShiftTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Color     string    `json:"color"`
	SortOrder int32     `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}
