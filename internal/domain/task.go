package domain

import (
	"errors"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Common task validation errors
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwner   = errors.New("task owner cannot be empty")
	ErrInvalidTaskTitle = errors.New("task title must be non-empty and must not start with a digit")
	ErrDueDateInPast    = errors.New("due date cannot be in the past")
)

// Task priorities. Anything outside this set is coerced to no priority
// rather than rejected; see NormalizePriority.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a single to-do item owned by exactly one user. All reads
// and mutations are scoped to the owner's ID.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task owned by userID with a fresh ID and timestamps.
// The priority is normalized, not validated: unknown values become nil.
func NewTask(
	userID uuid.UUID,
	title string,
	description *string,
	dueDate *time.Time,
	priority *string,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
		DueDate:     dueDate,
		Priority:    NormalizePriority(priority),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks structural task invariants. The due-date-in-the-past rule
// depends on the clock and lives in ValidateTitle/ValidateDueDate so the
// service can apply it against an injected time.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	return ValidateTitle(t.Title)
}

// ValidateTitle rejects empty titles and titles whose first character is a
// digit.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrInvalidTaskTitle
	}
	if unicode.IsDigit(rune(title[0])) {
		return ErrInvalidTaskTitle
	}
	return nil
}

// ValidateDueDate rejects due dates strictly before the calendar day of
// now. The time of day on both sides is ignored, so a due date of "today"
// is always accepted.
func ValidateDueDate(dueDate, now time.Time) error {
	today := truncateToDay(now)
	due := truncateToDay(dueDate)
	if due.Before(today) {
		return ErrDueDateInPast
	}
	return nil
}

// NormalizePriority maps a requested priority onto the accepted set. Values
// outside {low, medium, high} come back as nil. Intentionally never an
// error: unknown priorities are stored as no priority.
func NormalizePriority(priority *string) *string {
	if priority == nil {
		return nil
	}
	switch *priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		p := *priority
		return &p
	default:
		return nil
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
