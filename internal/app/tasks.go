package service

import (
	"context"
	"fmt"
	"net/url"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// TaskService manages per-client tasks.
type TaskService struct {
	deps
}

// List returns a client's tasks, narrowed to category when it is non-empty.
func (s *TaskService) List(ctx context.Context, clientID string, category model.TaskCategory) ([]model.Task, error) {
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: category %q", ErrInvalidInput, category)
	}
	path := clientPath(clientID) + "/tasks"
	if category != "" {
		path += "?" + url.Values{"category": {string(category)}}.Encode()
	}
	return fallback.Call(ctx, s.guard, "tasks.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Task, error) {
			var out []model.Task
			err := s.get(ctx, "tasks.list", path, &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Task, error) {
			return s.store.Tasks(ctx, clientID, category), nil
		},
	)
}

// Create adds a task with the creation defaults filled in.
func (s *TaskService) Create(ctx context.Context, clientID string, in model.CreateTask) (model.Task, error) {
	in = in.WithDefaults()
	if !in.Category.Valid() {
		return model.Task{}, fmt.Errorf("%w: category %q", ErrInvalidInput, in.Category)
	}
	if !in.Status.Valid() {
		return model.Task{}, fmt.Errorf("%w: status %q", ErrInvalidInput, in.Status)
	}
	return fallback.Call(ctx, s.guard, "tasks.create", fallback.Degrade,
		func(ctx context.Context) (model.Task, error) {
			var out model.Task
			err := s.post(ctx, "tasks.create", clientPath(clientID)+"/tasks", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Task, error) {
			return s.store.AddTask(ctx, clientID, in), nil
		},
	)
}

// Update merges patch into the task. When the API is down and the task is not
// in fallback data the error is returned rather than degraded.
func (s *TaskService) Update(ctx context.Context, taskID string, patch model.TaskPatch) (model.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Task{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *patch.Status)
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return model.Task{}, fmt.Errorf("%w: category %q", ErrInvalidInput, *patch.Category)
	}
	return fallback.Call(ctx, s.guard, "tasks.update", fallback.Degrade,
		func(ctx context.Context) (model.Task, error) {
			var out model.Task
			err := s.put(ctx, "tasks.update", "/api/tasks/"+url.PathEscape(taskID), patch, &out)
			return out, err
		},
		func(ctx context.Context) (model.Task, error) {
			t, err := s.store.UpdateTask(ctx, taskID, patch)
			if err != nil {
				return model.Task{}, fmt.Errorf("update task: %w", err)
			}
			return t, nil
		},
	)
}
