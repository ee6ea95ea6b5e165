package ops

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalforge/internal/goal"
	"goalforge/internal/model"
	"goalforge/internal/plan"
)

func seedDataDir(t *testing.T, dir string) (model.Goal, *model.Schedule) {
	t.Helper()
	ctx := context.Background()

	repo, err := goal.NewFileRepo(dir)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 0, 90)
	g, err := repo.Create(ctx, model.Goal{
		Title:                "Save an emergency fund",
		Category:             model.CategoryFinance,
		TargetDate:           &target,
		WeeklyAvailableHours: 3,
	})
	require.NoError(t, err)

	sched, err := plan.Generate(g, plan.DefaultPlanningConfig(), now)
	require.NoError(t, err)
	g.Schedule = sched
	_, err = repo.Update(ctx, g)
	require.NoError(t, err)
	return g, sched
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	src := t.TempDir()
	g, sched := seedDataDir(t, src)

	archive := filepath.Join(t.TempDir(), "goalforge.tar.gz")
	require.NoError(t, Snapshot(src, archive))

	restored := filepath.Join(t.TempDir(), "restored")
	require.NoError(t, Restore(archive, restored))

	repo, err := goal.NewFileRepo(restored)
	require.NoError(t, err)

	got, ok, err := repo.Get(context.Background(), g.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Schedule)
	assert.Equal(t, sched.TotalTasks(), got.Schedule.TotalTasks())
}

func TestVerify(t *testing.T) {
	src := t.TempDir()
	_, sched := seedDataDir(t, src)

	archive := filepath.Join(t.TempDir(), "goalforge.tar.gz")
	require.NoError(t, Snapshot(src, archive))

	info, err := Verify(archive)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Goals)
	assert.Equal(t, 1, info.Schedules)
	assert.Equal(t, sched.TotalTasks(), info.ScheduledTasks)
}

func TestVerify_EmptyArchive(t *testing.T) {
	src := t.TempDir()
	archive := filepath.Join(t.TempDir(), "empty.tar.gz")
	require.NoError(t, Snapshot(src, archive))

	_, err := Verify(archive)
	assert.ErrorContains(t, err, "goals.json")
}
