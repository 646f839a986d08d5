package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// DateTime is a request timestamp that accepts either a full RFC 3339
// value or a bare calendar date (2006-01-02), as produced by date-only
// form inputs. A bare date is read as midnight UTC.
type DateTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", s)
	}

	d.Time = t
	return nil
}

// TimePtr returns the wrapped time, or nil for an absent value.
func (d *DateTime) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// RegisterRequest is the payload for the registration endpoint. Format and
// length checks happen again in the domain layer; the tags here reject the
// obviously broken payloads before any service call.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RefreshTokenResponse carries the replacement token.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// AuthResponse is the successful response for registration and login.
type AuthResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// CreateTaskRequest is the payload for task creation. Priority is
// free-form on purpose: unknown values are coerced, not rejected.
type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DueDate     *DateTime `json:"due_date,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
}

// UpdateTaskRequest is the payload for partial task updates. Absent fields
// leave the stored value unchanged.
type UpdateTaskRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	DueDate     *DateTime `json:"due_date,omitempty"`
	Priority    *string   `json:"priority,omitempty"`

	// prioritySet records whether the priority key appeared in the raw
	// JSON; see UnmarshalJSON.
	prioritySet bool
}

// UnmarshalJSON distinguishes an absent priority key from an explicit one,
// including an explicit null. A request that names the key always changes
// the stored priority, even when the value is coerced to none.
func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateTaskRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateTaskRequest(a)
	_, r.prioritySet = keys["priority"]
	return nil
}

// PrioritySet reports whether the request body named the priority key.
func (r *UpdateTaskRequest) PrioritySet() bool {
	return r.prioritySet
}

// TaskResponse is the outward representation of a task.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTaskResponse converts a domain task to its response shape. The owner
// ID is implied by the authenticated route and not echoed back.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// NewTaskListResponse converts a slice of domain tasks, preserving order.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return out
}
