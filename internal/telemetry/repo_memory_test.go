package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RecordAndFilter(t *testing.T) {
	repo := NewMemoryRepository()
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.RecordEvent(EventGoalCreated, t0, EventMetadata{"goal_id": "g1"}))
	require.NoError(t, repo.RecordEvent(EventPlanGenerated, t0.Add(time.Minute), EventMetadata{"goal_id": "g1", "phases": 4}))
	require.NoError(t, repo.RecordEvent(EventTaskCompleted, t0.Add(2*time.Minute), EventMetadata{"task_id": "g1-p1-t1"}))

	all, err := repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ID)
	assert.Contains(t, all[1].Metadata, `"phases":4`)

	onlyCompleted, err := repo.GetEvents(time.Time{}, []EventType{EventTaskCompleted})
	require.NoError(t, err)
	require.Len(t, onlyCompleted, 1)
	assert.Equal(t, EventTaskCompleted, onlyCompleted[0].Type)

	recent, err := repo.GetEvents(t0.Add(time.Minute), nil)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	require.NoError(t, repo.Clear())
	all, err = repo.GetEvents(time.Time{}, nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
