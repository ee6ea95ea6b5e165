package plan

import (
	"time"

	"goalforge/internal/model"
)

// MarkComplete flags the task with the given id as done. Returns false when
// no such task exists; a stale id is a caller-visible signal, not an error.
func MarkComplete(goal *model.Goal, id model.TaskID, now time.Time) bool {
	if goal == nil || goal.Schedule == nil {
		return false
	}
	_, t := goal.Schedule.FindTask(id)
	if t == nil {
		return false
	}
	t.Completed = true
	at := now
	t.CompletedAt = &at
	return true
}

// MarkIncomplete reopens a previously completed task. Round-trips with
// MarkComplete: completion state and CompletedAt are fully restored.
func MarkIncomplete(goal *model.Goal, id model.TaskID) bool {
	if goal == nil || goal.Schedule == nil {
		return false
	}
	_, t := goal.Schedule.FindTask(id)
	if t == nil {
		return false
	}
	t.Completed = false
	t.CompletedAt = nil
	return true
}
