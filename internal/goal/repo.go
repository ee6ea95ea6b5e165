package goal

import (
	"context"
	"errors"

	"goalforge/internal/model"
)

var ErrNotFound = errors.New("goal not found")

// Repo stores goals. The engine never touches storage; handlers load a goal,
// run the engine, and write the result back through this interface.
type Repo interface {
	Create(ctx context.Context, g model.Goal) (model.Goal, error)
	Get(ctx context.Context, id model.GoalID) (model.Goal, bool, error)
	Update(ctx context.Context, g model.Goal) (model.Goal, error)
	List(ctx context.Context) ([]model.Goal, error)
	Delete(ctx context.Context, id model.GoalID) error
}
