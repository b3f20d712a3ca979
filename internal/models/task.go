package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type TaskState string

const (
	TaskStateTodo  TaskState = "todo"
	TaskStateDoing TaskState = "doing"
	TaskStateDone  TaskState = "done"
)

// Task lives inside exactly one project's task list; it has no table of
// its own. The id is generated server-side and stable across updates.
type Task struct {
	ID                EntityID     `json:"id"`
	Title             string       `json:"title"`
	State             TaskState    `json:"state"`
	Description       string       `json:"description"`
	AssignedMemberIDs EntityIDList `json:"assigned_member_ids"`
}

// TaskList is stored as a JSON-encoded column on the parent project.
type TaskList []Task

// FindIndex returns the position of the task with the given id, or -1.
func (l TaskList) FindIndex(id EntityID) int {
	for i, task := range l {
		if task.ID.Equal(id) {
			return i
		}
	}
	return -1
}

func (l TaskList) Value() (driver.Value, error) {
	if l == nil {
		l = TaskList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *TaskList) Scan(value interface{}) error {
	if value == nil {
		*l = TaskList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported column type %T for TaskList", value)
	}
}
