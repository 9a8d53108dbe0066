package model

import "time"

type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Elapsed returns how long the task has existed as of now.
func (t Task) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// TaskFilter selects tasks by completion state. A nil Completed matches everything.
type TaskFilter struct {
	Completed *bool
}

func (f TaskFilter) Match(t Task) bool {
	return f.Completed == nil || t.Completed == *f.Completed
}

type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
