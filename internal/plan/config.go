package plan

// PlanningConfig carries the engine tunables. Zero values are filled from
// defaults, so a zero PlanningConfig is usable in tests.
type PlanningConfig struct {
	MaxPhasesPerGoal      int     `json:"max_phases_per_goal"`
	MaxTasksPerPhase      int     `json:"max_tasks_per_phase"`
	DefaultWeeklyHours    float64 `json:"default_weekly_hours"`
	MinimumAdjustmentDays int     `json:"minimum_adjustment_days"`
}

const (
	DefaultMaxPhasesPerGoal      = 5
	DefaultMaxTasksPerPhase      = 10
	DefaultWeeklyHours           = 5.0
	DefaultMinimumAdjustmentDays = 7
)

// driftTolerance is the slack between expected and actual progress before a
// schedule counts as off-track.
const driftTolerance = 0.1

func DefaultPlanningConfig() PlanningConfig {
	return PlanningConfig{
		MaxPhasesPerGoal:      DefaultMaxPhasesPerGoal,
		MaxTasksPerPhase:      DefaultMaxTasksPerPhase,
		DefaultWeeklyHours:    DefaultWeeklyHours,
		MinimumAdjustmentDays: DefaultMinimumAdjustmentDays,
	}
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c PlanningConfig) withDefaults() PlanningConfig {
	if c.MaxPhasesPerGoal <= 0 {
		c.MaxPhasesPerGoal = DefaultMaxPhasesPerGoal
	}
	if c.MaxTasksPerPhase <= 0 {
		c.MaxTasksPerPhase = DefaultMaxTasksPerPhase
	}
	if c.DefaultWeeklyHours <= 0 {
		c.DefaultWeeklyHours = DefaultWeeklyHours
	}
	// Zero disables the adjustment rate limit, so only negatives reset.
	if c.MinimumAdjustmentDays < 0 {
		c.MinimumAdjustmentDays = DefaultMinimumAdjustmentDays
	}
	return c
}
