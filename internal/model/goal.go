package model

import (
	"time"
)

type GoalID string

// Category tags a goal with a broad life area. It biases phase titles and
// default-horizon heuristics only; scheduling math never branches on it.
type Category string

const (
	CategoryCareer    Category = "career"
	CategoryHealth    Category = "health"
	CategoryEducation Category = "education"
	CategoryFinance   Category = "finance"
	CategoryPersonal  Category = "personal"
	CategoryCreative  Category = "creative"
)

// Normalize maps unknown category strings to CategoryPersonal so that stored
// goals from older clients keep planning sensibly.
func (c Category) Normalize() Category {
	switch c {
	case CategoryCareer, CategoryHealth, CategoryEducation, CategoryFinance, CategoryPersonal, CategoryCreative:
		return c
	}
	return CategoryPersonal
}

type Goal struct {
	ID       GoalID   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`

	// TargetDate is the user-declared deadline. nil means "no deadline";
	// the planner falls back to a category-specific default horizon.
	TargetDate *time.Time `json:"targetDate,omitempty"`

	// WeeklyAvailableHours is the time budget the user committed. Must be
	// positive for planning to succeed.
	WeeklyAvailableHours float64 `json:"weeklyAvailableHours"`

	// Schedule is absent until the first plan is generated. The goal owns
	// it exclusively; there is no back-reference from Schedule to Goal.
	Schedule *Schedule `json:"schedule,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
