package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Valid(t *testing.T) {
	valid := []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}
	for _, status := range valid {
		assert.True(t, status.Valid(), string(status))
	}

	invalid := []TaskStatus{"", "DONE", "pending", "ARCHIVED"}
	for _, status := range invalid {
		assert.False(t, status.Valid(), string(status))
	}
}

func TestTask_Overdue(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		dueDate *time.Time
		status  TaskStatus
		want    bool
	}{
		{name: "no due date", dueDate: nil, status: TaskStatusPending, want: false},
		{name: "due in future", dueDate: &future, status: TaskStatusPending, want: false},
		{name: "pending past due", dueDate: &past, status: TaskStatusPending, want: true},
		{name: "in progress past due", dueDate: &past, status: TaskStatusInProgress, want: true},
		{name: "completed past due", dueDate: &past, status: TaskStatusCompleted, want: false},
		{name: "cancelled past due", dueDate: &past, status: TaskStatusCancelled, want: false},
		{name: "due exactly now", dueDate: &now, status: TaskStatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{DueDate: tt.dueDate, Status: tt.status}
			assert.Equal(t, tt.want, task.Overdue(now))
		})
	}
}
