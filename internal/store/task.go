package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/titodev/tasker-api/internal/domain"
)

// TaskFilter is a structured predicate for task queries. The zero value
// matches every task of an owner. The store translates the filter into
// storage queries without interpreting business meaning.
type TaskFilter struct {
	// Priority, when non-nil, restricts results to tasks with that priority.
	Priority *domain.Priority

	// Status, when non-nil, restricts results to tasks with that status.
	Status *domain.Status

	// Search, when non-empty, restricts results to tasks whose title OR
	// description contains the string, case-insensitively.
	Search string
}

// TaskStore defines the interface for task data persistence.
// Implementations translate predicates to storage queries and never
// apply business rules; ownership scoping is expressed in the
// predicate of each call.
type TaskStore interface {
	// Insert saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrDuplicateTitle if the title is already taken.
	Insert(ctx context.Context, task *domain.Task) error

	// GetForOwner retrieves a task by ID scoped to the given owner.
	// Returns ErrTaskNotFound when no task matches the (id, owner)
	// predicate, whether the task is missing or owned by someone else.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// FindForOwner retrieves all of an owner's tasks matching the filter,
	// ordered by creation time. Returns an empty slice when none match.
	// Each call re-executes the query against current state.
	FindForOwner(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update replaces all mutable fields of the task in a single
	// statement scoped to (task.ID, task.OwnerID).
	// Returns ErrTaskNotFound when zero rows matched the predicate.
	// Returns ErrDuplicateTitle if the new title collides with another task.
	Update(ctx context.Context, task *domain.Task) error

	// Delete atomically finds and removes the task scoped to (id, owner).
	// Returns the deleted task, or ErrTaskNotFound when none matched.
	Delete(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// TitleExists reports whether any task in the store has exactly the
	// given title, excluding the task with excludeID (pass uuid.Nil to
	// exclude nothing). The check is case-sensitive and global across
	// owners.
	TitleExists(ctx context.Context, title string, excludeID uuid.UUID) (bool, error)

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TaskStore
}
