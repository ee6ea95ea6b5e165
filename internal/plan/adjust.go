package plan

import (
	"fmt"
	"sort"
	"time"

	"goalforge/internal/model"
)

// Adjust re-derives the goal's schedule: completed tasks are preserved
// verbatim, remaining work is re-flowed across [now, original horizon end].
// The deadline never moves; a too-short window compresses per-phase task
// counts instead. GeneratedAt is preserved so expected-progress math keeps
// its original baseline.
func Adjust(goal model.Goal, cfg PlanningConfig, now time.Time) (*model.Schedule, error) {
	cfg = cfg.withDefaults()

	old := goal.Schedule
	if old == nil {
		return nil, ErrNoExistingSchedule
	}
	if cfg.MinimumAdjustmentDays > 0 {
		minGap := time.Duration(cfg.MinimumAdjustmentDays) * 24 * time.Hour
		if now.Sub(old.LastAdjustedAt) < minGap {
			return nil, ErrTooSoonToAdjust
		}
	}
	if goal.WeeklyAvailableHours <= 0 {
		return nil, ErrInsufficientAvailability
	}

	var completed, remaining []model.ScheduledTask
	for i := range old.Phases {
		for _, t := range old.Phases[i].Tasks {
			if t.Completed {
				completed = append(completed, t)
			} else {
				remaining = append(remaining, t)
			}
		}
	}

	// The deadline is user-declared and immutable here. If it has fully
	// elapsed the remaining work gets a one-week wind-down window.
	end := old.HorizonEnd()
	if !end.After(now) {
		end = now.AddDate(0, 0, 7)
	}

	h := heuristicsFor(goal.Category)
	spans := partitionHorizon(now, end, h.WeeksPerPhase, cfg.MaxPhasesPerGoal)

	// Guarantee enough phases to hold the remaining tasks under the
	// per-phase cap. Generate never emits more than maxPhases*maxTasks
	// tasks, so this always fits.
	if need := ceilDiv(len(remaining), cfg.MaxTasksPerPhase); need > len(spans) && need <= cfg.MaxPhasesPerGoal {
		spans = partitionHorizon(now, end, 0, need)
	}

	phases := make([]model.Phase, len(spans))
	for i, sp := range spans {
		phases[i] = model.Phase{
			Title:       phaseTitle(h, i),
			Description: fmt.Sprintf("Phase %d of %d for %s", i+1, len(spans), goal.Title),
			StartDate:   sp.start,
			EndDate:     sp.end,
			Tasks:       []model.ScheduledTask{},
		}
	}

	// Spread the remaining tasks across phases in their original order,
	// front-loading the leftovers, then recompute only their dates.
	base := len(remaining) / len(spans)
	extra := len(remaining) % len(spans)
	idx := 0
	for i := range spans {
		n := base
		if i < extra {
			n++
		}
		if n == 0 {
			continue
		}
		dates := spreadDates(spans[i], n, now)
		for j := 0; j < n; j++ {
			t := remaining[idx]
			t.ScheduledDate = dates[j]
			phases[i].Tasks = append(phases[i].Tasks, t)
			idx++
		}
	}

	// Completed tasks keep their original dates and rejoin the phase whose
	// range contains them, or the nearest earlier phase when compression
	// removed it. History may push a phase past the per-phase cap; the cap
	// governs newly planned work only.
	for _, t := range completed {
		i := phaseIndexFor(phases, t.ScheduledDate)
		phases[i].Tasks = appendByDate(phases[i].Tasks, t)
	}

	// Compression can leave phases with nothing in them; drop those but
	// always keep at least one phase.
	kept := phases[:0]
	for _, p := range phases {
		if len(p.Tasks) > 0 {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		kept = phases[:1]
	}

	return &model.Schedule{
		Phases:                kept,
		WeeklyCommitmentHours: goal.WeeklyAvailableHours,
		GeneratedAt:           old.GeneratedAt,
		LastAdjustedAt:        now,
	}, nil
}

// phaseIndexFor finds the phase containing date, falling back to the nearest
// earlier phase, then the first.
func phaseIndexFor(phases []model.Phase, date time.Time) int {
	for i := len(phases) - 1; i >= 0; i-- {
		if !date.Before(phases[i].StartDate) {
			return i
		}
	}
	return 0
}

// appendByDate inserts the task keeping the phase sorted by scheduled date.
// The sort is stable so equal dates keep insertion order.
func appendByDate(tasks []model.ScheduledTask, t model.ScheduledTask) []model.ScheduledTask {
	tasks = append(tasks, t)
	sort.SliceStable(tasks, func(a, b int) bool {
		return tasks[a].ScheduledDate.Before(tasks[b].ScheduledDate)
	})
	return tasks
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
