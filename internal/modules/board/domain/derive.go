package domain

import (
	"math"
	"sort"
)

// FallbackCategory labels completed tasks whose category is empty when
// grouping for the chart.
const FallbackCategory = "General"

// Categories returns the distinct non-empty categories across all tasks in
// lexicographic order.
func Categories(tasks []Task) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range tasks {
		if t.Category == "" || seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	sort.Strings(out)
	return out
}

// ApplyFilter returns the tasks matching both the status and the category
// filter, preserving store order.
func ApplyFilter(tasks []Task, f Filter) []Task {
	f = f.Normalize()
	out := []Task{}
	for _, t := range tasks {
		switch f.Status {
		case StatusOpen:
			if t.Completed {
				continue
			}
		case StatusDone:
			if !t.Completed {
				continue
			}
		}
		if f.Category != CategoryAll && t.Category != f.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

type Tally struct {
	Open       int
	Completed  int
	Total      int
	Percentage int
}

// Counts summarizes completion over the whole store. Percentage is 0 for an
// empty store.
func Counts(tasks []Task) Tally {
	tally := Tally{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			tally.Completed++
		}
	}
	tally.Open = tally.Total - tally.Completed
	if tally.Total > 0 {
		tally.Percentage = int(math.Round(100 * float64(tally.Completed) / float64(tally.Total)))
	}
	return tally
}

// ChartPoint is one bar of the completions chart. Placeholder marks the
// synthetic point emitted when nothing is completed yet, so consumers can
// tell it apart from a real category.
type ChartPoint struct {
	Name        string
	Completed   int
	Placeholder bool
}

// ChartData groups completed tasks by category in first-seen order. Tasks
// without a category fall back to FallbackCategory.
func ChartData(tasks []Task) []ChartPoint {
	index := map[string]int{}
	points := []ChartPoint{}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		name := t.Category
		if name == "" {
			name = FallbackCategory
		}
		if i, ok := index[name]; ok {
			points[i].Completed++
			continue
		}
		index[name] = len(points)
		points = append(points, ChartPoint{Name: name, Completed: 1})
	}
	if len(points) == 0 {
		return []ChartPoint{{Name: "no completions yet", Placeholder: true}}
	}
	return points
}
