package domain

import (
	"time"
)

type WeekPlanStatus string

const (
	WeekPlanStatusDraft     WeekPlanStatus = "DRAFT"
	WeekPlanStatusPublished WeekPlanStatus = "PUBLISHED"
	WeekPlanStatusArchived  WeekPlanStatus = "ARCHIVED"
)

// WeekPlan marks one calendar week of one group for publishing. The status is
// plain bookkeeping; it does not gate any edit operation.
type WeekPlan struct {
	ID                 string         `json:"id"`
	ResidentialGroupID string         `json:"residentialGroupId"`
	WeekStart          string         `json:"weekStart"` // Monday
	WeekEnd            string         `json:"weekEnd"`   // Sunday
	Year               int32          `json:"year"`
	WeekNumber         int32          `json:"weekNumber"`
	Status             WeekPlanStatus `json:"status"`
	CreatedAt          time.Time      `json:"createdAt"`
}
