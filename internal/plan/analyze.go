package plan

import (
	"fmt"
	"time"

	"goalforge/internal/model"
)

// ProgressAnalysis is a read-only snapshot of a schedule's completion state
// at a given instant.
type ProgressAnalysis struct {
	TotalTasks     int                   `json:"totalTasks"`
	CompletedTasks int                   `json:"completedTasks"`
	OverdueTasks   []model.ScheduledTask `json:"overdueTasks"`

	// DaysRemaining is the zero-floored day count from now to the end of
	// the last phase.
	DaysRemaining int `json:"daysRemaining"`

	OverallProgress  float64 `json:"overallProgress"`
	ExpectedProgress float64 `json:"expectedProgress"`
	IsOnTrack        bool    `json:"isOnTrack"`

	CurrentPhase *model.Phase         `json:"currentPhase,omitempty"`
	NextTask     *model.ScheduledTask `json:"nextTask,omitempty"`

	TasksForToday []model.ScheduledTask `json:"tasksForToday"`
}

// Analyze derives progress statistics from the schedule. It never fails: an
// empty schedule is a degenerate-but-valid state and yields zero statistics.
func Analyze(schedule *model.Schedule, now time.Time) ProgressAnalysis {
	a := ProgressAnalysis{
		OverdueTasks:  []model.ScheduledTask{},
		TasksForToday: []model.ScheduledTask{},
	}
	if schedule == nil {
		a.IsOnTrack = true
		return a
	}

	var next *model.ScheduledTask
	for i := range schedule.Phases {
		p := &schedule.Phases[i]
		for j := range p.Tasks {
			t := &p.Tasks[j]
			a.TotalTasks++
			if t.Completed {
				a.CompletedTasks++
				continue
			}
			if t.IsOverdue(now) {
				a.OverdueTasks = append(a.OverdueTasks, *t)
			}
			if sameDay(t.ScheduledDate, now) {
				a.TasksForToday = append(a.TasksForToday, *t)
			}
			if next == nil || t.ScheduledDate.Before(next.ScheduledDate) {
				next = t
			}
		}
	}
	if next != nil {
		c := *next
		a.NextTask = &c
	}

	if a.TotalTasks > 0 {
		a.OverallProgress = float64(a.CompletedTasks) / float64(a.TotalTasks)
	}

	horizonEnd := schedule.HorizonEnd()
	if horizonEnd.After(now) {
		a.DaysRemaining = int(horizonEnd.Sub(now).Hours() / 24)
	}

	if total := horizonEnd.Sub(schedule.GeneratedAt); total > 0 {
		expected := float64(now.Sub(schedule.GeneratedAt)) / float64(total)
		a.ExpectedProgress = clamp01(expected)
	}

	a.IsOnTrack = a.OverallProgress >= a.ExpectedProgress-driftTolerance

	a.CurrentPhase = currentPhase(schedule, now)
	return a
}

// currentPhase picks the first active phase, else the first incomplete one.
// Returns a copy so callers cannot alias the schedule.
func currentPhase(schedule *model.Schedule, now time.Time) *model.Phase {
	for i := range schedule.Phases {
		if schedule.Phases[i].IsActive(now) {
			c := schedule.Phases[i]
			return &c
		}
	}
	for i := range schedule.Phases {
		if !schedule.Phases[i].IsCompleted() && len(schedule.Phases[i].Tasks) > 0 {
			c := schedule.Phases[i]
			return &c
		}
	}
	return nil
}

// Suggestions maps the analysis to advisory strings. The list may be empty;
// there is no failure mode.
func Suggestions(a ProgressAnalysis) []string {
	out := []string{}
	if n := len(a.OverdueTasks); n > 0 {
		out = append(out, fmt.Sprintf("You have %d overdue task(s); consider reallocating time", n))
	}
	if !a.IsOnTrack {
		out = append(out, "You're behind pace; an adjusted schedule is recommended")
	}
	if a.TotalTasks > 0 && a.CompletedTasks == a.TotalTasks {
		out = append(out, "All tasks are complete. Time to set a new goal")
	} else if a.DaysRemaining > 0 && a.DaysRemaining <= 7 {
		out = append(out, "Less than a week remains; tackle the shortest remaining tasks first")
	}
	return out
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
