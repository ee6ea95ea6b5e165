package plan

import (
	"goalforge/internal/model"
)

// heuristics are the per-category planning parameters. The table is a pure
// lookup; scheduling math itself never branches on the category.
type heuristics struct {
	// DefaultHorizonDays sizes the plan when the goal has no target date.
	DefaultHorizonDays int

	// WeeksPerPhase drives how many phases the horizon is cut into.
	WeeksPerPhase int

	// AverageTaskMinutes sizes the per-phase task count from capacity.
	AverageTaskMinutes int

	// DurationMenu lists allowed task durations, largest first. The
	// generator packs phases greedily from this menu.
	DurationMenu []int

	// PhaseTitles name phases in order; overflow phases get a numbered
	// fallback title.
	PhaseTitles []string

	// SessionNoun labels generated tasks ("Study session 3").
	SessionNoun string
}

var heuristicsTable = map[model.Category]heuristics{
	model.CategoryCareer: {
		DefaultHorizonDays: 90,
		WeeksPerPhase:      3,
		AverageTaskMinutes: 60,
		DurationMenu:       []int{90, 60, 45, 30},
		PhaseTitles:        []string{"Groundwork", "Skill Building", "Visibility", "Execution", "Consolidation"},
		SessionNoun:        "Work session",
	},
	model.CategoryHealth: {
		DefaultHorizonDays: 60,
		WeeksPerPhase:      2,
		AverageTaskMinutes: 45,
		DurationMenu:       []int{60, 45, 30},
		PhaseTitles:        []string{"Baseline", "Habit Building", "Intensity", "Consistency", "Maintenance"},
		SessionNoun:        "Training session",
	},
	model.CategoryEducation: {
		DefaultHorizonDays: 90,
		WeeksPerPhase:      3,
		AverageTaskMinutes: 60,
		DurationMenu:       []int{90, 60, 45, 30},
		PhaseTitles:        []string{"Fundamentals", "Core Material", "Practice", "Deep Dives", "Review"},
		SessionNoun:        "Study session",
	},
	model.CategoryFinance: {
		DefaultHorizonDays: 120,
		WeeksPerPhase:      4,
		AverageTaskMinutes: 45,
		DurationMenu:       []int{60, 45, 30},
		PhaseTitles:        []string{"Assessment", "Budgeting", "Optimization", "Growth", "Review"},
		SessionNoun:        "Planning session",
	},
	model.CategoryPersonal: {
		DefaultHorizonDays: 90,
		WeeksPerPhase:      3,
		AverageTaskMinutes: 45,
		DurationMenu:       []int{60, 45, 30},
		PhaseTitles:        []string{"Getting Started", "Building Momentum", "Pushing Through", "Refining", "Wrapping Up"},
		SessionNoun:        "Session",
	},
	model.CategoryCreative: {
		DefaultHorizonDays: 75,
		WeeksPerPhase:      3,
		AverageTaskMinutes: 60,
		DurationMenu:       []int{90, 60, 45, 30},
		PhaseTitles:        []string{"Exploration", "Drafting", "Iteration", "Polish", "Release"},
		SessionNoun:        "Creative session",
	},
}

func heuristicsFor(c model.Category) heuristics {
	return heuristicsTable[c.Normalize()]
}
