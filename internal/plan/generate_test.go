package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalforge/internal/model"
)

func testGoal(now time.Time) model.Goal {
	target := now.AddDate(0, 0, 90)
	return model.Goal{
		ID:                   "g1",
		Title:                "Become a staff engineer",
		Category:             model.CategoryCareer,
		TargetDate:           &target,
		WeeklyAvailableHours: 10,
	}
}

func TestGenerate_CareerScenario(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)

	sched, err := Generate(goal, DefaultPlanningConfig(), now)
	require.NoError(t, err)
	require.NotNil(t, sched)

	assert.GreaterOrEqual(t, len(sched.Phases), 1)
	assert.LessOrEqual(t, len(sched.Phases), DefaultMaxPhasesPerGoal)
	assert.True(t, sched.Phases[0].StartDate.Equal(now), "first phase starts at now")
	assert.Equal(t, now, sched.GeneratedAt)
	assert.Equal(t, now, sched.LastAdjustedAt)
	assert.Equal(t, 10.0, sched.WeeklyCommitmentHours)

	for _, p := range sched.Phases {
		assert.True(t, p.StartDate.Before(p.EndDate))
		require.NotEmpty(t, p.Tasks)
		assert.LessOrEqual(t, len(p.Tasks), DefaultMaxTasksPerPhase)
	}
	assert.True(t, sched.HorizonEnd().Equal(*goal.TargetDate), "last phase ends at the deadline")
}

func TestGenerate_PhasesContiguousNonOverlapping(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sched, err := Generate(testGoal(now), DefaultPlanningConfig(), now)
	require.NoError(t, err)

	for i := 0; i+1 < len(sched.Phases); i++ {
		assert.False(t, sched.Phases[i+1].StartDate.Before(sched.Phases[i].EndDate),
			"phase %d overlaps phase %d", i+1, i)
	}
	assert.LessOrEqual(t, sched.TotalTasks(), DefaultMaxPhasesPerGoal*DefaultMaxTasksPerPhase)
}

func TestGenerate_CapacityInvariant(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)

	sched, err := Generate(goal, DefaultPlanningConfig(), now)
	require.NoError(t, err)

	for i, p := range sched.Phases {
		weeks := p.EndDate.Sub(p.StartDate).Minutes() / minutesPerWeek
		capacity := goal.WeeklyAvailableHours * 60 * weeks
		sum := 0
		for _, task := range p.Tasks {
			assert.Positive(t, task.DurationMinutes)
			sum += task.DurationMinutes
		}
		assert.LessOrEqual(t, float64(sum), capacity, "phase %d over capacity", i)
	}
}

func TestGenerate_TaskDatesStrictlyIncreasingAndInRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sched, err := Generate(testGoal(now), DefaultPlanningConfig(), now)
	require.NoError(t, err)

	for _, p := range sched.Phases {
		for j, task := range p.Tasks {
			assert.False(t, task.ScheduledDate.Before(now), "task scheduled before now")
			assert.False(t, task.ScheduledDate.Before(p.StartDate), "task before its phase")
			if j > 0 {
				assert.True(t, task.ScheduledDate.After(p.Tasks[j-1].ScheduledDate),
					"dates must strictly increase within a phase")
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	cfg := DefaultPlanningConfig()

	a, err := Generate(goal, cfg, now)
	require.NoError(t, err)
	b, err := Generate(goal, cfg, now)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_DefaultHorizonWithoutTargetDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	goal.TargetDate = nil
	goal.Category = model.CategoryHealth

	sched, err := Generate(goal, DefaultPlanningConfig(), now)
	require.NoError(t, err)

	// Health goals default to a 60 day horizon.
	assert.True(t, sched.HorizonEnd().Equal(now.AddDate(0, 0, 60)))
}

func TestGenerate_UnknownCategoryFallsBack(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	goal.Category = "underwater-basket-weaving"

	sched, err := Generate(goal, DefaultPlanningConfig(), now)
	require.NoError(t, err)
	require.NotEmpty(t, sched.Phases)
	assert.Equal(t, "Getting Started", sched.Phases[0].Title)
}

func TestGenerate_RejectsNonPositiveHours(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	goal.WeeklyAvailableHours = 0

	_, err := Generate(goal, DefaultPlanningConfig(), now)
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
}

func TestGenerate_RejectsPastTargetDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	past := now.AddDate(0, 0, -1)
	goal.TargetDate = &past

	_, err := Generate(goal, DefaultPlanningConfig(), now)
	assert.ErrorIs(t, err, ErrInvalidTargetDate)

	same := now
	goal.TargetDate = &same
	_, err = Generate(goal, DefaultPlanningConfig(), now)
	assert.ErrorIs(t, err, ErrInvalidTargetDate)
}

func TestGenerate_TinyBudgetStillYieldsOneTaskPerPhase(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	goal := testGoal(now)
	goal.WeeklyAvailableHours = 0.5

	sched, err := Generate(goal, DefaultPlanningConfig(), now)
	require.NoError(t, err)
	for _, p := range sched.Phases {
		assert.NotEmpty(t, p.Tasks)
	}
}

func TestPackDurations_RespectsCapacity(t *testing.T) {
	menu := []int{90, 60, 45, 30}
	for _, tc := range []struct {
		count, capacity int
	}{
		{1, 30}, {3, 100}, {5, 300}, {10, 450}, {10, 2000},
	} {
		out := packDurations(tc.count, tc.capacity, menu)
		require.Len(t, out, tc.count)
		sum := 0
		for _, d := range out {
			assert.Positive(t, d)
			sum += d
		}
		assert.LessOrEqual(t, sum, tc.capacity, "count=%d capacity=%d", tc.count, tc.capacity)
	}
}
