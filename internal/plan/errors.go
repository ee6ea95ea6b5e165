package plan

import "errors"

var (
	// ErrInsufficientAvailability rejects goals with a non-positive weekly
	// time budget.
	ErrInsufficientAvailability = errors.New("weekly available hours must be positive")

	// ErrInvalidTargetDate rejects target dates that are not strictly in
	// the future.
	ErrInvalidTargetDate = errors.New("target date must be in the future")

	// ErrNoExistingSchedule means Adjust was called before Generate.
	ErrNoExistingSchedule = errors.New("goal has no schedule to adjust")

	// ErrTooSoonToAdjust rate-limits re-planning to avoid thrashing.
	ErrTooSoonToAdjust = errors.New("schedule was adjusted too recently")
)
