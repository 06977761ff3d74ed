package domain

import "strings"

const (
	StatusAll  = "all"
	StatusOpen = "open"
	StatusDone = "done"

	CategoryAll = "all"
)

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	DueDate   string `json:"due_date,omitempty"`
	Completed bool   `json:"completed"`
}

// Filter narrows the visible task list. A category no task currently has is
// legal and simply yields an empty filtered list.
type Filter struct {
	Status   string `json:"status"`
	Category string `json:"category"`
}

func DefaultFilter() Filter {
	return Filter{Status: StatusAll, Category: CategoryAll}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusAll, StatusOpen, StatusDone:
		return true
	default:
		return false
	}
}

// Normalize maps unknown status values and blank categories back to "all".
func (f Filter) Normalize() Filter {
	if !ValidStatus(f.Status) {
		f.Status = StatusAll
	}
	if strings.TrimSpace(f.Category) == "" {
		f.Category = CategoryAll
	}
	return f
}

// Find returns the task with the given id.
func Find(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Add prepends a new incomplete task and reports whether the collection
// changed. Blank title or category after trimming leaves the input untouched.
// The returned slice is always a fresh snapshot.
func Add(tasks []Task, id, title, category, dueDate string) ([]Task, bool) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return tasks, false
	}
	next := make([]Task, 0, len(tasks)+1)
	next = append(next, Task{
		ID:       id,
		Title:    title,
		Category: category,
		DueDate:  strings.TrimSpace(dueDate),
	})
	next = append(next, tasks...)
	return next, true
}

// Update replaces the fields of the task with the given id while preserving
// its id and completed flag. Absent ids and blank title/category are no-ops.
func Update(tasks []Task, id, title, category, dueDate string) ([]Task, bool) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return tasks, false
	}
	if _, ok := Find(tasks, id); !ok {
		return tasks, false
	}
	next := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Title = title
			t.Category = category
			t.DueDate = strings.TrimSpace(dueDate)
		}
		next[i] = t
	}
	return next, true
}

// Remove drops the task with the given id; absent ids are a no-op.
func Remove(tasks []Task, id string) ([]Task, bool) {
	if _, ok := Find(tasks, id); !ok {
		return tasks, false
	}
	next := make([]Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next, true
}

// Toggle flips the completed flag of the task with the given id; absent ids
// are a no-op.
func Toggle(tasks []Task, id string) ([]Task, bool) {
	if _, ok := Find(tasks, id); !ok {
		return tasks, false
	}
	next := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		next[i] = t
	}
	return next, true
}
