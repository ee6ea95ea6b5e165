package goal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"goalforge/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	goals map[model.GoalID]model.Goal
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{goals: make(map[model.GoalID]model.Goal)}
}

func newGoalID() model.GoalID {
	return model.GoalID("goal_" + uuid.NewString())
}

func (r *MemoryRepo) Create(ctx context.Context, g model.Goal) (model.Goal, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = newGoalID()
	}
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Category = g.Category.Normalize()

	r.goals[g.ID] = g
	return g, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id model.GoalID) (model.Goal, bool, error) {
	_ = ctx

	r.mu.RLock()
	g, ok := r.goals[id]
	r.mu.RUnlock()
	return g, ok, nil
}

func (r *MemoryRepo) Update(ctx context.Context, g model.Goal) (model.Goal, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.goals[g.ID]
	if !ok {
		return model.Goal{}, ErrNotFound
	}
	g.CreatedAt = old.CreatedAt
	g.UpdatedAt = time.Now()
	r.goals[g.ID] = g
	return g, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]model.Goal, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id model.GoalID) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.goals[id]; !ok {
		return ErrNotFound
	}
	delete(r.goals, id)
	return nil
}
