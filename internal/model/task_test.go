package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_Elapsed(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Description: "Buy milk", CreatedAt: created}

	assert.Equal(t, 90*time.Minute, task.Elapsed(created.Add(90*time.Minute)))
	assert.Equal(t, time.Duration(0), task.Elapsed(created))
}

func TestTaskFilter_Match(t *testing.T) {
	done, pending := true, false
	completedTask := Task{ID: 1, Completed: true}
	pendingTask := Task{ID: 2}

	tests := []struct {
		name   string
		filter TaskFilter
		task   Task
		want   bool
	}{
		{"no filter matches completed", TaskFilter{}, completedTask, true},
		{"no filter matches pending", TaskFilter{}, pendingTask, true},
		{"completed filter keeps completed", TaskFilter{Completed: &done}, completedTask, true},
		{"completed filter drops pending", TaskFilter{Completed: &done}, pendingTask, false},
		{"pending filter keeps pending", TaskFilter{Completed: &pending}, pendingTask, true},
		{"pending filter drops completed", TaskFilter{Completed: &pending}, completedTask, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.task))
		})
	}
}
