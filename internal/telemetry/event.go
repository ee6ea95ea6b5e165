package telemetry

import "time"

type EventType string

const (
	EventGoalCreated   EventType = "goal_created"
	EventGoalDeleted   EventType = "goal_deleted"
	EventPlanGenerated EventType = "plan_generated"
	EventPlanAdjusted  EventType = "plan_adjusted"
	EventTaskCompleted EventType = "task_completed"
	EventTaskReopened  EventType = "task_reopened"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
