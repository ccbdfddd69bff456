package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/titodev/tasker-api/internal/domain"
	"github.com/titodev/tasker-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	CreateFn func(ctx context.Context, ownerID uuid.UUID, input service.TaskInput) (*domain.Task, error)
	ListFn   func(ctx context.Context, ownerID uuid.UUID, filter service.ListFilter) ([]*domain.Task, error)
	GetFn    func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	UpdateFn func(ctx context.Context, ownerID, id uuid.UUID, input service.TaskInput) (*domain.Task, error)
	DeleteFn func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// Default values used when functions aren't explicitly defined
	Task  *domain.Task
	Tasks []*domain.Task
	Err   error
}

// Create implements the service.TaskService interface
func (m *MockTaskService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, input)
	}
	return m.Task, m.Err
}

// List implements the service.TaskService interface
func (m *MockTaskService) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter service.ListFilter,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, filter)
	}
	return m.Tasks, m.Err
}

// Get implements the service.TaskService interface
func (m *MockTaskService) Get(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, ownerID, id)
	}
	return m.Task, m.Err
}

// Update implements the service.TaskService interface
func (m *MockTaskService) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, id, input)
	}
	return m.Task, m.Err
}

// Delete implements the service.TaskService interface
func (m *MockTaskService) Delete(
	ctx context.Context,
	ownerID, id uuid.UUID,
) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}
	return m.Task, m.Err
}
