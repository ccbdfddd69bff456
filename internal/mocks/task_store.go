package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/titodev/tasker-api/internal/domain"
	"github.com/titodev/tasker-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. The default
// implementation keeps tasks in a map and honors the same predicate
// semantics as the real store: ownership scoping, global title
// uniqueness, and case-insensitive search.
type MockTaskStore struct {
	// Function fields for customizable behavior
	InsertFn       func(ctx context.Context, task *domain.Task) error
	GetForOwnerFn  func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	FindForOwnerFn func(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	UpdateFn       func(ctx context.Context, task *domain.Task) error
	DeleteFn       func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)
	TitleExistsFn  func(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)

	// Data for default implementation
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Insert implements the store.TaskStore interface
func (m *MockTaskStore) Insert(ctx context.Context, task *domain.Task) error {
	if m.InsertFn != nil {
		return m.InsertFn(ctx, task)
	}

	for _, existing := range m.Tasks {
		if existing.Title == task.Title {
			return store.ErrDuplicateTitle
		}
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetForOwner implements the store.TaskStore interface
func (m *MockTaskStore) GetForOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Task, error) {
	if m.GetForOwnerFn != nil {
		return m.GetForOwnerFn(ctx, id, ownerID)
	}

	task, ok := m.Tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// FindForOwner implements the store.TaskStore interface
func (m *MockTaskStore) FindForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if m.FindForOwnerFn != nil {
		return m.FindForOwnerFn(ctx, ownerID, filter)
	}

	results := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			title := strings.ToLower(task.Title)
			description := strings.ToLower(task.Description)
			if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
				continue
			}
		}
		copied := *task
		results = append(results, &copied)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, ok := m.Tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return store.ErrTaskNotFound
	}

	for id, other := range m.Tasks {
		if id != task.ID && other.Title == task.Title {
			return store.ErrDuplicateTitle
		}
	}

	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, ownerID)
	}

	task, ok := m.Tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return task, nil
}

// TitleExists implements the store.TaskStore interface
func (m *MockTaskStore) TitleExists(
	ctx context.Context,
	title string,
	excludeID uuid.UUID,
) (bool, error) {
	if m.TitleExistsFn != nil {
		return m.TitleExistsFn(ctx, title, excludeID)
	}

	for id, task := range m.Tasks {
		if id != excludeID && task.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the store.TaskStore interface. The mock has no real
// transaction support, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
