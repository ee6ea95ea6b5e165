package goal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalforge/internal/model"
	"goalforge/internal/plan"
)

func repoImpls(t *testing.T) map[string]Repo {
	fileRepo, err := NewFileRepo(t.TempDir())
	require.NoError(t, err)
	return map[string]Repo{
		"memory": NewMemoryRepo(),
		"file":   fileRepo,
	}
}

func TestRepo_CreateGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repoImpls(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(ctx, model.Goal{
				Title:                "Run a half marathon",
				Category:             model.CategoryHealth,
				WeeklyAvailableHours: 4,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())

			got, ok, err := repo.Get(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "Run a half marathon", got.Title)

			got.WeeklyAvailableHours = 6
			updated, err := repo.Update(ctx, got)
			require.NoError(t, err)
			assert.Equal(t, 6.0, updated.WeeklyAvailableHours)
			assert.Equal(t, created.CreatedAt, updated.CreatedAt)

			goals, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, goals, 1)

			require.NoError(t, repo.Delete(ctx, created.ID))
			_, ok, err = repo.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, ok)

			assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
		})
	}
}

func TestRepo_UpdateUnknownGoal(t *testing.T) {
	ctx := context.Background()
	for name, repo := range repoImpls(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Update(ctx, model.Goal{ID: "goal_missing"})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileRepo_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 0, 90)
	created, err := repo.Create(ctx, model.Goal{
		Title:                "Ship the side project",
		Category:             model.CategoryCreative,
		TargetDate:           &target,
		WeeklyAvailableHours: 8,
	})
	require.NoError(t, err)

	sched, err := plan.Generate(created, plan.DefaultPlanningConfig(), now)
	require.NoError(t, err)
	created.Schedule = sched
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	reopened, err := NewFileRepo(dir)
	require.NoError(t, err)

	got, ok, err := reopened.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Schedule)
	assert.Equal(t, sched.TotalTasks(), got.Schedule.TotalTasks())
	assert.True(t, got.Schedule.GeneratedAt.Equal(now))
}
