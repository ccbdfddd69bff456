package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/titodev/tasker-api/internal/domain"
	"github.com/titodev/tasker-api/internal/platform/logger"
	"github.com/titodev/tasker-api/internal/redact"
	"github.com/titodev/tasker-api/internal/store"
)

// TaskInput carries the caller-supplied task fields as they arrive on
// the wire. The owner and ID are never part of the input; the service
// stamps the owner and the store assigns the ID.
type TaskInput struct {
	Title       string
	Description string
	Email       string
	DueDate     string
	Priority    string
	Status      string
}

// ListFilter carries the optional query filters for List. Empty values
// mean "no restriction"; the owner scope is always applied on top.
type ListFilter struct {
	Priority string
	Status   string
	Search   string
}

// TaskService provides owner-scoped task operations.
// Every method requires the owner UUID already resolved from a verified
// token by the caller.
type TaskService interface {
	// Create validates the fields, applies enum defaults, rejects
	// duplicate titles, stamps the owner, and persists the task.
	// Returns the persisted task including its identifier.
	Create(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*domain.Task, error)

	// List returns all of the owner's tasks matching the filter.
	// Returns an empty slice, not an error, when none match.
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*domain.Task, error)

	// Get returns the task only if it exists and belongs to the owner;
	// otherwise ErrTaskNotFound.
	Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// Update re-validates the fields exactly like Create and performs a
	// full-field replace scoped to (id, owner). Prior field values not in
	// the new input are gone. Returns the updated task.
	Update(ctx context.Context, ownerID, id uuid.UUID, input TaskInput) (*domain.Task, error)

	// Delete atomically finds and removes the task scoped to (id, owner).
	// Returns the deleted task for confirmation.
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	db        *sql.DB
	logger    *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService backed by the given store.
// The db handle scopes multi-statement writes to a transaction; it may
// be nil, in which case each statement runs on its own connection.
// Returns an error if the store is nil.
func NewTaskService(taskStore store.TaskStore, db *sql.DB, log *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		db:        db,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

// withStore runs fn against a transaction-scoped store when a database
// handle is present, and directly against the base store otherwise.
func (s *taskServiceImpl) withStore(
	ctx context.Context,
	fn func(ctx context.Context, ts store.TaskStore) error,
) error {
	if s.db == nil {
		return fn(ctx, s.taskStore)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.taskStore.WithTx(tx))
	})
}

// parseInput converts the raw wire fields into their domain types,
// applying the enum defaults. Every parse failure is a field-scoped
// validation error; nothing reaches the store on this path.
func parseInput(input TaskInput) (dueDate time.Time, priority domain.Priority, status domain.Status, err error) {
	dueDate, err = domain.ParseDueDate(input.DueDate)
	if err != nil {
		return time.Time{}, "", "", domain.NewValidationError(
			"due_date", "must be a calendar date in YYYY-MM-DD form", err)
	}

	priority, err = domain.ParsePriority(input.Priority)
	if err != nil {
		return time.Time{}, "", "", domain.NewValidationError(
			"priority", "must be one of Low, Medium, High", err)
	}

	status, err = domain.ParseStatus(input.Status)
	if err != nil {
		return time.Time{}, "", "", domain.NewValidationError(
			"status", "must be one of NotStarted, Pending, Completed", err)
	}

	return dueDate, priority, status, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dueDate, priority, status, err := parseInput(input)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(
		ownerID,
		input.Title,
		input.Description,
		input.Email,
		dueDate,
		priority,
		status,
	)
	if err != nil {
		return nil, err
	}

	err = s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		// Best-effort duplicate guard; the unique index on the title
		// column is the authority when two creates race past this check.
		taken, err := ts.TitleExists(ctx, task.Title, uuid.Nil)
		if err != nil {
			log.Error("failed to check title uniqueness",
				slog.String("error", redact.Error(err)))
			return NewTaskServiceError("create", "title check failed", ErrStoreUnavailable)
		}
		if taken {
			return ErrDuplicateTitle
		}

		if err := ts.Insert(ctx, task); err != nil {
			if store.IsDuplicateError(err) {
				return ErrDuplicateTitle
			}
			log.Error("failed to insert task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", task.ID.String()))
			return NewTaskServiceError("create", "insert failed", ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(
	ctx context.Context,
	ownerID uuid.UUID,
	filter ListFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var storeFilter store.TaskFilter

	if filter.Priority != "" {
		priority, err := domain.ParsePriority(filter.Priority)
		if err != nil {
			return nil, domain.NewValidationError(
				"priority", "must be one of Low, Medium, High", err)
		}
		storeFilter.Priority = &priority
	}

	if filter.Status != "" {
		status, err := domain.ParseStatus(filter.Status)
		if err != nil {
			return nil, domain.NewValidationError(
				"status", "must be one of NotStarted, Pending, Completed", err)
		}
		storeFilter.Status = &status
	}

	storeFilter.Search = filter.Search

	tasks, err := s.taskStore.FindForOwner(ctx, ownerID, storeFilter)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", redact.Error(err)),
			slog.String("owner_id", ownerID.String()))
		return nil, NewTaskServiceError("list", "query failed", ErrStoreUnavailable)
	}

	return tasks, nil
}

// Get implements TaskService.Get
func (s *taskServiceImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetForOwner(ctx, id, ownerID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("get", "query failed", ErrStoreUnavailable)
	}

	return task, nil
}

// Update implements TaskService.Update
func (s *taskServiceImpl) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dueDate, priority, status, err := parseInput(input)
	if err != nil {
		return nil, err
	}

	var task *domain.Task
	err = s.withStore(ctx, func(ctx context.Context, ts store.TaskStore) error {
		var err error
		task, err = ts.GetForOwner(ctx, id, ownerID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return ErrTaskNotFound
			}
			log.Error("failed to load task for update",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", id.String()))
			return NewTaskServiceError("update", "query failed", ErrStoreUnavailable)
		}

		if err := task.Replace(
			input.Title,
			input.Description,
			input.Email,
			dueDate,
			priority,
			status,
		); err != nil {
			return err
		}

		// A different task holding the same title anywhere blocks the update.
		taken, err := ts.TitleExists(ctx, task.Title, task.ID)
		if err != nil {
			log.Error("failed to check title uniqueness",
				slog.String("error", redact.Error(err)))
			return NewTaskServiceError("update", "title check failed", ErrStoreUnavailable)
		}
		if taken {
			return ErrDuplicateTitle
		}

		if err := ts.Update(ctx, task); err != nil {
			switch {
			case store.IsNotFoundError(err):
				return ErrTaskNotFound
			case store.IsDuplicateError(err):
				return ErrDuplicateTitle
			}
			log.Error("failed to update task",
				slog.String("error", redact.Error(err)),
				slog.String("task_id", id.String()))
			return NewTaskServiceError("update", "update failed", ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("task updated",
		slog.String("task_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.Delete(ctx, id, ownerID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("delete", "delete failed", ErrStoreUnavailable)
	}

	log.Info("task deleted",
		slog.String("task_id", id.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}
