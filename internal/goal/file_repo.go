package goal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"goalforge/internal/model"
)

type fileState struct {
	Goals map[model.GoalID]model.Goal `json:"goals"`
}

func newFileState() fileState {
	return fileState{Goals: map[model.GoalID]model.Goal{}}
}

// FileRepo is a persistent goal repository backed by a single JSON document.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "goals.json"),
		s:    newFileState(),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.s = newFileState()
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Goals == nil {
		loaded.Goals = map[model.GoalID]model.Goal{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(ctx context.Context, g model.Goal) (model.Goal, error) {
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

	r.s.Goals[g.ID] = g
	if err := r.saveLocked(); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

func (r *FileRepo) Get(ctx context.Context, id model.GoalID) (model.Goal, bool, error) {
	_ = ctx

	r.mu.RLock()
	g, ok := r.s.Goals[id]
	r.mu.RUnlock()
	return g, ok, nil
}

func (r *FileRepo) Update(ctx context.Context, g model.Goal) (model.Goal, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.s.Goals[g.ID]
	if !ok {
		return model.Goal{}, ErrNotFound
	}
	g.CreatedAt = old.CreatedAt
	g.UpdatedAt = time.Now()
	r.s.Goals[g.ID] = g
	if err := r.saveLocked(); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

func (r *FileRepo) List(ctx context.Context) ([]model.Goal, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Goal, 0, len(r.s.Goals))
	for _, g := range r.s.Goals {
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

func (r *FileRepo) Delete(ctx context.Context, id model.GoalID) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.s.Goals[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.Goals, id)
	return r.saveLocked()
}
