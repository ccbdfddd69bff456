package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/titodev/tasker-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,min=3,max=30"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
}

// TokenResponse defines the successful response for the token endpoint,
// matching the OAuth2 password-grant shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// TaskRequest defines the payload for task create and full-replace
// update. The owner and ID never appear here; the server assigns both.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Owner       string `json:"owner"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// DeleteTaskResponse confirms a deletion, echoing the removed task.
type DeleteTaskResponse struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Email:       task.Email,
		DueDate:     task.DueDate.Format(time.DateOnly),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Owner:       task.OwnerID.String(),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// tasksToResponse converts a slice of tasks, keeping an empty slice
// rather than nil so the JSON stays an array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
