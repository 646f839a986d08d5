package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "valid title", title: "Buy milk", wantErr: false},
		{name: "empty title", title: "", wantErr: true},
		{name: "starts with digit", title: "1st task", wantErr: true},
		{name: "digit elsewhere is fine", title: "Task 1", wantErr: false},
		{name: "single digit", title: "7", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTaskTitle)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDueDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		wantErr bool
	}{
		{name: "tomorrow", dueDate: now.AddDate(0, 0, 1), wantErr: false},
		{name: "yesterday", dueDate: now.AddDate(0, 0, -1), wantErr: true},
		{
			// Same calendar day, earlier clock time. The time of day is
			// ignored, so this is valid.
			name:    "today at midnight",
			dueDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			wantErr: false,
		},
		{
			name:    "end of yesterday",
			dueDate: time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateDueDate(tt.dueDate, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDueDateInPast)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority *string
		want     *string
	}{
		{name: "nil stays nil", priority: nil, want: nil},
		{name: "low kept", priority: strPtr("low"), want: strPtr("low")},
		{name: "medium kept", priority: strPtr("medium"), want: strPtr("medium")},
		{name: "high kept", priority: strPtr("high"), want: strPtr("high")},
		{name: "unknown coerced to nil", priority: strPtr("urgent"), want: nil},
		{name: "empty coerced to nil", priority: strPtr(""), want: nil},
		{name: "case sensitive", priority: strPtr("High"), want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizePriority(tt.priority)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(userID, "Buy milk", nil, nil, nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, userID, task.UserID)
		assert.False(t, task.Completed)
		assert.Nil(t, task.Priority)
		assert.Nil(t, task.DueDate)
		assert.Nil(t, task.Description)
	})

	t.Run("invalid title rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(userID, "2 eggs", nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidTaskTitle)
	})

	t.Run("unknown priority coerced not rejected", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(userID, "Buy milk", nil, nil, strPtr("critical"))
		require.NoError(t, err)
		assert.Nil(t, task.Priority)
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewTask(uuid.Nil, "Buy milk", nil, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyTaskOwner)
	})
}
