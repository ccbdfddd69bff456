package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority represents the urgency level of a task.
type Priority string

// Possible priority values
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status represents the progress state of a task.
type Status string

// Possible status values
const (
	StatusNotStarted Status = "NotStarted"
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
)

// Title length bounds, applied after trimming surrounding whitespace.
const (
	TitleMinLength = 3
	TitleMaxLength = 100
)

// Common validation errors for Task
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwnerID     = errors.New("task owner ID cannot be empty")
	ErrTaskTitleTooShort    = errors.New("task title must be at least 3 characters long")
	ErrTaskTitleTooLong     = errors.New("task title must be at most 100 characters long")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrInvalidTaskEmail     = errors.New("invalid task email format")
	ErrEmptyTaskDueDate     = errors.New("task due date cannot be empty")
	ErrInvalidDueDate       = errors.New("due date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidPriority      = errors.New("invalid task priority")
	ErrInvalidStatus        = errors.New("invalid task status")
)

// Task represents a single task record owned by a user.
// OwnerID is always stamped by the service layer, never taken from
// request payloads.
type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	DueDate     time.Time `json:"due_date"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID, trims the title and
// description, and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(
	ownerID uuid.UUID,
	title, description, email string,
	dueDate time.Time,
	priority Priority,
	status Status,
) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Email:       email,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.OwnerID == uuid.Nil {
		return ErrEmptyTaskOwnerID
	}

	title := strings.TrimSpace(t.Title)
	if len(title) < TitleMinLength {
		return ErrTaskTitleTooShort
	}
	if len(title) > TitleMaxLength {
		return ErrTaskTitleTooLong
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyTaskDescription
	}

	if !validateEmailFormat(t.Email) {
		return ErrInvalidTaskEmail
	}

	if t.DueDate.IsZero() {
		return ErrEmptyTaskDueDate
	}

	if !isValidPriority(t.Priority) {
		return ErrInvalidPriority
	}

	if !isValidStatus(t.Status) {
		return ErrInvalidStatus
	}

	return nil
}

// Replace substitutes all caller-mutable fields with the given values
// and refreshes the UpdatedAt timestamp. ID, OwnerID, and CreatedAt are
// preserved; prior field values are gone after a successful call.
// Returns an error if the replacement fields fail validation.
func (t *Task) Replace(
	title, description, email string,
	dueDate time.Time,
	priority Priority,
	status Status,
) error {
	replaced := *t
	replaced.Title = strings.TrimSpace(title)
	replaced.Description = strings.TrimSpace(description)
	replaced.Email = email
	replaced.DueDate = dueDate
	replaced.Priority = priority
	replaced.Status = status
	replaced.UpdatedAt = time.Now().UTC()

	if err := replaced.Validate(); err != nil {
		return err
	}

	*t = replaced
	return nil
}

// ParsePriority converts a string into a Priority.
// An empty string yields the default PriorityLow; any other
// unrecognized value is rejected with ErrInvalidPriority.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityLow, nil
	}
	p := Priority(s)
	if !isValidPriority(p) {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// ParseStatus converts a string into a Status.
// An empty string yields the default StatusNotStarted; any other
// unrecognized value is rejected with ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusNotStarted, nil
	}
	st := Status(s)
	if !isValidStatus(st) {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ParseDueDate parses a calendar date in YYYY-MM-DD form.
// Returns ErrInvalidDueDate if the value does not parse.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDueDate
	}
	return d, nil
}

// isValidPriority checks if the given priority is a valid Priority.
func isValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// isValidStatus checks if the given status is a valid Status.
func isValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusPending, StatusCompleted:
		return true
	default:
		return false
	}
}

// validateEmailFormat checks standard local@domain syntax with the usual
// length limits: local part at most 64 characters, domain at most 255,
// each DNS label between 1 and 63 characters.
func validateEmailFormat(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	local := email[:at]
	host := email[at+1:]

	if len(local) > 64 {
		return false
	}
	if strings.ContainsAny(local, " \t") {
		return false
	}

	if len(host) > 255 || !strings.Contains(host, ".") {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if r != '-' && !isAlphanumeric(r) {
				return false
			}
		}
	}

	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
