package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titodev/tasker-api/internal/domain"
	"github.com/titodev/tasker-api/internal/mocks"
	"github.com/titodev/tasker-api/internal/service"
	"github.com/titodev/tasker-api/internal/store"
)

func validInput() service.TaskInput {
	return service.TaskInput{
		Title:       "Write quarterly report",
		Description: "Summarize Q3 results",
		Email:       "user@example.com",
		DueDate:     "2026-10-01",
		Priority:    "High",
		Status:      "Pending",
	}
}

func newService(t *testing.T, taskStore store.TaskStore) service.TaskService {
	t.Helper()
	svc, err := service.NewTaskService(taskStore, nil, nil)
	require.NoError(t, err)
	return svc
}

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates task with explicit fields", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newService(t, taskStore)
		ownerID := uuid.New()

		task, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		assert.Equal(t, ownerID, task.OwnerID)
		assert.Equal(t, "Write quarterly report", task.Title)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, domain.StatusPending, task.Status)
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), task.DueDate)
		assert.Len(t, taskStore.Tasks, 1)
	})

	t.Run("defaults priority and status when omitted", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newService(t, taskStore)

		input := validInput()
		input.Priority = ""
		input.Status = ""

		task, err := svc.Create(context.Background(), uuid.New(), input)
		require.NoError(t, err)

		assert.Equal(t, domain.PriorityLow, task.Priority)
		assert.Equal(t, domain.StatusNotStarted, task.Status)
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())

		input := validInput()
		input.DueDate = "01-10-2026"

		_, err := svc.Create(context.Background(), uuid.New(), input)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())

		input := validInput()
		input.Priority = "Urgent"

		_, err := svc.Create(context.Background(), uuid.New(), input)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("rejects duplicate title across owners", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newService(t, taskStore)

		_, err := svc.Create(context.Background(), uuid.New(), validInput())
		require.NoError(t, err)

		// A different owner reusing the same title is still rejected
		_, err = svc.Create(context.Background(), uuid.New(), validInput())
		require.ErrorIs(t, err, service.ErrDuplicateTitle)
		assert.Len(t, taskStore.Tasks, 1)
	})

	t.Run("maps insert race on title to duplicate error", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		taskStore.TitleExistsFn = func(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
			return false, nil
		}
		taskStore.InsertFn = func(ctx context.Context, task *domain.Task) error {
			return store.ErrDuplicateTitle
		}
		svc := newService(t, taskStore)

		_, err := svc.Create(context.Background(), uuid.New(), validInput())
		require.ErrorIs(t, err, service.ErrDuplicateTitle)
	})

	t.Run("maps store failure to unavailable", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		taskStore.TitleExistsFn = func(ctx context.Context, title string, excludeID uuid.UUID) (bool, error) {
			return false, errors.New("connection refused")
		}
		svc := newService(t, taskStore)

		_, err := svc.Create(context.Background(), uuid.New(), validInput())
		require.ErrorIs(t, err, service.ErrStoreUnavailable)
	})
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc service.TaskService, ownerID uuid.UUID) {
		t.Helper()
		inputs := []service.TaskInput{
			{
				Title: "Buy groceries", Description: "Milk and eggs",
				Email: "user@example.com", DueDate: "2026-10-01",
				Priority: "Low", Status: "NotStarted",
			},
			{
				Title: "Prepare slides", Description: "Groceries budget review",
				Email: "user@example.com", DueDate: "2026-10-02",
				Priority: "High", Status: "Pending",
			},
			{
				Title: "Call dentist", Description: "Reschedule appointment",
				Email: "user@example.com", DueDate: "2026-10-03",
				Priority: "High", Status: "Completed",
			},
		}
		for _, input := range inputs {
			_, err := svc.Create(context.Background(), ownerID, input)
			require.NoError(t, err)
		}
	}

	t.Run("returns only the owner's tasks", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()
		seed(t, svc, ownerID)

		other := uuid.New()
		_, err := svc.Create(context.Background(), other, service.TaskInput{
			Title: "Water plants", Description: "Balcony",
			Email: "other@example.com", DueDate: "2026-10-04",
		})
		require.NoError(t, err)

		tasks, err := svc.List(context.Background(), ownerID, service.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, tasks, 3)
		for _, task := range tasks {
			assert.Equal(t, ownerID, task.OwnerID)
		}
	})

	t.Run("filters by priority and status", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()
		seed(t, svc, ownerID)

		tasks, err := svc.List(context.Background(), ownerID, service.ListFilter{Priority: "High"})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)

		tasks, err = svc.List(context.Background(), ownerID, service.ListFilter{
			Priority: "High",
			Status:   "Completed",
		})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Call dentist", tasks[0].Title)
	})

	t.Run("search matches title or description case-insensitively", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()
		seed(t, svc, ownerID)

		tasks, err := svc.List(context.Background(), ownerID, service.ListFilter{Search: "GROCERIES"})
		require.NoError(t, err)
		// Matches one title and one description
		assert.Len(t, tasks, 2)
	})

	t.Run("rejects unknown filter values", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())

		_, err := svc.List(context.Background(), uuid.New(), service.ListFilter{Priority: "Urgent"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())

		tasks, err := svc.List(context.Background(), uuid.New(), service.ListFilter{})
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})
}

func TestTaskServiceGet(t *testing.T) {
	t.Parallel()

	t.Run("returns the owner's task", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()

		created, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		task, err := svc.Get(context.Background(), ownerID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, task.ID)
	})

	t.Run("foreign task is indistinguishable from missing", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()

		created, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		_, err = svc.Get(context.Background(), uuid.New(), created.ID)
		require.ErrorIs(t, err, service.ErrTaskNotFound)

		_, err = svc.Get(context.Background(), ownerID, uuid.New())
		require.ErrorIs(t, err, service.ErrTaskNotFound)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()

		created, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), ownerID, created.ID, service.TaskInput{
			Title:       "Ship the release",
			Description: "Cut and tag v2",
			Email:       "release@example.com",
			DueDate:     "2026-12-24",
			Priority:    "Medium",
			Status:      "Completed",
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, ownerID, updated.OwnerID)
		assert.Equal(t, "Ship the release", updated.Title)
		assert.Equal(t, domain.PriorityMedium, updated.Priority)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	})

	t.Run("cannot update another owner's task", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())

		created, err := svc.Create(context.Background(), uuid.New(), validInput())
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), uuid.New(), created.ID, validInput())
		require.ErrorIs(t, err, service.ErrTaskNotFound)
	})

	t.Run("keeping the same title is not a duplicate", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()

		created, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		input := validInput()
		input.Status = "Completed"

		updated, err := svc.Update(context.Background(), ownerID, created.ID, input)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
	})

	t.Run("rejects a title held by another task", func(t *testing.T) {
		t.Parallel()
		svc := newService(t, mocks.NewMockTaskStore())
		ownerID := uuid.New()

		_, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		second, err := svc.Create(context.Background(), ownerID, service.TaskInput{
			Title: "Call dentist", Description: "Reschedule",
			Email: "user@example.com", DueDate: "2026-10-03",
		})
		require.NoError(t, err)

		input := validInput() // same title as the first task
		_, err = svc.Update(context.Background(), ownerID, second.ID, input)
		require.ErrorIs(t, err, service.ErrDuplicateTitle)
	})
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes and returns the task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newService(t, taskStore)
		ownerID := uuid.New()

		created, err := svc.Create(context.Background(), ownerID, validInput())
		require.NoError(t, err)

		deleted, err := svc.Delete(context.Background(), ownerID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)
		assert.Empty(t, taskStore.Tasks)

		_, err = svc.Get(context.Background(), ownerID, created.ID)
		require.ErrorIs(t, err, service.ErrTaskNotFound)
	})

	t.Run("cannot delete another owner's task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newService(t, taskStore)

		created, err := svc.Create(context.Background(), uuid.New(), validInput())
		require.NoError(t, err)

		_, err = svc.Delete(context.Background(), uuid.New(), created.ID)
		require.ErrorIs(t, err, service.ErrTaskNotFound)
		assert.Len(t, taskStore.Tasks, 1)
	})
}
