package model

import (
	"time"
)

type TaskID string

// Schedule is a multi-phase execution plan for a goal. Phases are stored in
// execution order and are never reordered after creation.
type Schedule struct {
	Phases                []Phase   `json:"phases"`
	WeeklyCommitmentHours float64   `json:"weeklyCommitmentHours"`
	GeneratedAt           time.Time `json:"generatedAt"`
	LastAdjustedAt        time.Time `json:"lastAdjustedAt"`
}

// TotalTasks counts tasks across all phases.
func (s *Schedule) TotalTasks() int {
	n := 0
	for i := range s.Phases {
		n += len(s.Phases[i].Tasks)
	}
	return n
}

// CompletedTasks counts completed tasks across all phases.
func (s *Schedule) CompletedTasks() int {
	n := 0
	for i := range s.Phases {
		for j := range s.Phases[i].Tasks {
			if s.Phases[i].Tasks[j].Completed {
				n++
			}
		}
	}
	return n
}

// HorizonEnd returns the end of the last phase, or the zero time for an
// empty schedule.
func (s *Schedule) HorizonEnd() time.Time {
	if len(s.Phases) == 0 {
		return time.Time{}
	}
	return s.Phases[len(s.Phases)-1].EndDate
}

// FindTask locates a task by id across all phases. Returns the owning phase
// index and the task, or (-1, nil) when absent.
func (s *Schedule) FindTask(id TaskID) (int, *ScheduledTask) {
	for i := range s.Phases {
		for j := range s.Phases[i].Tasks {
			if s.Phases[i].Tasks[j].ID == id {
				return i, &s.Phases[i].Tasks[j]
			}
		}
	}
	return -1, nil
}

// Phase is a contiguous sub-interval of the planning horizon holding a batch
// of scheduled tasks. EndDate is exclusive: [StartDate, EndDate).
type Phase struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	Tasks       []ScheduledTask `json:"tasks"`
}

// Progress returns completed-task-count / task-count, 0 for an empty phase.
func (p *Phase) Progress() float64 {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for i := range p.Tasks {
		if p.Tasks[i].Completed {
			done++
		}
	}
	return float64(done) / float64(len(p.Tasks))
}

// IsCompleted reports whether every task in the phase is done.
func (p *Phase) IsCompleted() bool {
	return len(p.Tasks) > 0 && p.Progress() == 1
}

// IsActive reports whether now falls within [StartDate, EndDate) and the
// phase still has open tasks.
func (p *Phase) IsActive(now time.Time) bool {
	if p.IsCompleted() {
		return false
	}
	return !now.Before(p.StartDate) && now.Before(p.EndDate)
}

type ScheduledTask struct {
	ID    TaskID `json:"id"`
	Title string `json:"title"`

	// ScheduledDate falls within the owning phase's range at creation time.
	ScheduledDate   time.Time `json:"scheduledDate"`
	DurationMinutes int       `json:"durationMinutes"`

	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// IsOverdue reports whether the task is open and its scheduled date passed.
func (t *ScheduledTask) IsOverdue(now time.Time) bool {
	return !t.Completed && t.ScheduledDate.Before(now)
}
