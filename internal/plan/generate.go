package plan

import (
	"fmt"
	"time"

	"goalforge/internal/model"
)

const minutesPerWeek = 7 * 24 * 60

// Generate builds a fresh schedule for the goal. It is a pure function:
// identical inputs, including now, yield an identical schedule.
func Generate(goal model.Goal, cfg PlanningConfig, now time.Time) (*model.Schedule, error) {
	cfg = cfg.withDefaults()

	if goal.WeeklyAvailableHours <= 0 {
		return nil, ErrInsufficientAvailability
	}
	if goal.TargetDate != nil && !goal.TargetDate.After(now) {
		return nil, ErrInvalidTargetDate
	}

	h := heuristicsFor(goal.Category)

	end := now.AddDate(0, 0, h.DefaultHorizonDays)
	if goal.TargetDate != nil {
		end = *goal.TargetDate
	}

	spans := partitionHorizon(now, end, h.WeeksPerPhase, cfg.MaxPhasesPerGoal)

	phases := make([]model.Phase, 0, len(spans))
	for i, sp := range spans {
		capacity := sp.capacityMinutes(goal.WeeklyAvailableHours)

		count := capacity / h.AverageTaskMinutes
		if count < 1 {
			count = 1
		}
		if count > cfg.MaxTasksPerPhase {
			count = cfg.MaxTasksPerPhase
		}

		durations := packDurations(count, capacity, h.DurationMenu)
		dates := spreadDates(sp, count, now)

		tasks := make([]model.ScheduledTask, count)
		for j := 0; j < count; j++ {
			tasks[j] = model.ScheduledTask{
				ID:              taskID(goal.ID, i, j),
				Title:           fmt.Sprintf("%s %d", h.SessionNoun, j+1),
				ScheduledDate:   dates[j],
				DurationMinutes: durations[j],
			}
		}

		phases = append(phases, model.Phase{
			Title:       phaseTitle(h, i),
			Description: fmt.Sprintf("Phase %d of %d for %s", i+1, len(spans), goal.Title),
			StartDate:   sp.start,
			EndDate:     sp.end,
			Tasks:       tasks,
		})
	}

	return &model.Schedule{
		Phases:                phases,
		WeeklyCommitmentHours: goal.WeeklyAvailableHours,
		GeneratedAt:           now,
		LastAdjustedAt:        now,
	}, nil
}

type span struct {
	start time.Time
	end   time.Time
}

// capacityMinutes is the task-minute budget the span can hold at the given
// weekly commitment.
func (s span) capacityMinutes(weeklyHours float64) int {
	weeks := s.end.Sub(s.start).Minutes() / minutesPerWeek
	return int(weeklyHours * 60 * weeks)
}

// partitionHorizon cuts [start, end) into equal contiguous spans. The last
// span always ends exactly at end so rounding never leaves a gap.
func partitionHorizon(start, end time.Time, weeksPerPhase, maxPhases int) []span {
	horizon := end.Sub(start)

	count := maxPhases
	if weeksPerPhase > 0 {
		count = int(horizon.Hours()/(24*7)) / weeksPerPhase
	}
	if count < 1 {
		count = 1
	}
	if count > maxPhases {
		count = maxPhases
	}

	per := horizon / time.Duration(count)
	spans := make([]span, count)
	for i := 0; i < count; i++ {
		spans[i].start = start.Add(per * time.Duration(i))
		spans[i].end = start.Add(per * time.Duration(i+1))
	}
	spans[count-1].end = end
	return spans
}

// packDurations fills count slots from the menu, largest duration first,
// never exceeding capacity. Each pick must leave room for the remaining
// slots at the menu's smallest duration.
func packDurations(count, capacity int, menu []int) []int {
	out := make([]int, count)
	minD := menu[len(menu)-1]
	used := 0
	for i := 0; i < count; i++ {
		rest := count - i - 1
		d := 0
		for _, m := range menu {
			if used+m+rest*minD <= capacity {
				d = m
				break
			}
		}
		if d == 0 {
			// Budget too tight for the menu; split what is left evenly.
			d = (capacity - used) / (rest + 1)
			if d < 1 {
				d = 1
			}
		}
		out[i] = d
		used += d
	}
	return out
}

// spreadDates places count session dates evenly across the span, snapped to
// the top of the hour. Dates never precede now and are strictly increasing.
func spreadDates(sp span, count int, now time.Time) []time.Time {
	step := sp.end.Sub(sp.start) / time.Duration(count+1)
	dates := make([]time.Time, count)
	for i := 0; i < count; i++ {
		d := sp.start.Add(step * time.Duration(i+1)).Truncate(time.Hour)
		if d.Before(sp.start) {
			d = sp.start
		}
		if d.Before(now) {
			d = now
		}
		if i > 0 && !d.After(dates[i-1]) {
			d = dates[i-1].Add(time.Minute)
		}
		dates[i] = d
	}
	return dates
}

func phaseTitle(h heuristics, i int) string {
	if i < len(h.PhaseTitles) {
		return h.PhaseTitles[i]
	}
	return fmt.Sprintf("Phase %d", i+1)
}

func taskID(goalID model.GoalID, phaseIdx, taskIdx int) model.TaskID {
	return model.TaskID(fmt.Sprintf("%s-p%d-t%d", goalID, phaseIdx+1, taskIdx+1))
}
