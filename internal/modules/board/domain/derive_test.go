package domain_test

import (
	"testing"

	"studydash/internal/modules/board/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Solve set A", Category: "Math", Completed: true},
		{ID: "2", Title: "Read ch.1", Category: "Math"},
		{ID: "3", Title: "Lab report", Category: "Chemistry", Completed: true},
		{ID: "4", Title: "Vocabulary", Category: "English"},
	}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	t.Parallel()
	got := domain.Categories(sampleTasks())
	want := []string{"Chemistry", "English", "Math"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestApplyFilterAllAllReturnsEverythingInOrder(t *testing.T) {
	t.Parallel()
	tasks := sampleTasks()
	got := domain.ApplyFilter(tasks, domain.DefaultFilter())
	if len(got) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
	}
	for i := range tasks {
		if got[i].ID != tasks[i].ID {
			t.Fatalf("order must be preserved, position %d got %s", i, got[i].ID)
		}
	}
}

func TestApplyFilterStatusAndCategory(t *testing.T) {
	t.Parallel()
	tasks := sampleTasks()

	open := domain.ApplyFilter(tasks, domain.Filter{Status: "open", Category: "all"})
	if len(open) != 2 || open[0].ID != "2" || open[1].ID != "4" {
		t.Fatalf("unexpected open tasks: %+v", open)
	}

	doneMath := domain.ApplyFilter(tasks, domain.Filter{Status: "done", Category: "Math"})
	if len(doneMath) != 1 || doneMath[0].ID != "1" {
		t.Fatalf("unexpected done Math tasks: %+v", doneMath)
	}
}

func TestApplyFilterStaleCategoryYieldsEmptyList(t *testing.T) {
	t.Parallel()
	got := domain.ApplyFilter(sampleTasks(), domain.Filter{Status: "all", Category: "Biology"})
	if len(got) != 0 {
		t.Fatalf("stale category must yield empty list, got %+v", got)
	}
}

func TestCountsInvariants(t *testing.T) {
	t.Parallel()
	tally := domain.Counts(sampleTasks())
	if tally.Open+tally.Completed != tally.Total {
		t.Fatalf("open+completed must equal total: %+v", tally)
	}
	if tally.Completed != 2 || tally.Total != 4 || tally.Percentage != 50 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestCountsEmptyStore(t *testing.T) {
	t.Parallel()
	tally := domain.Counts(nil)
	if tally.Total != 0 || tally.Percentage != 0 {
		t.Fatalf("empty store must report zero percentage, got %+v", tally)
	}
}

func TestCountsPercentageRounds(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{
		{ID: "1", Category: "A", Completed: true},
		{ID: "2", Category: "A"},
		{ID: "3", Category: "A"},
	}
	if tally := domain.Counts(tasks); tally.Percentage != 33 {
		t.Fatalf("expected 33%%, got %d%%", tally.Percentage)
	}
}

func TestChartDataGroupsByFirstSeenCategory(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{
		{ID: "1", Category: "Math", Completed: true},
		{ID: "2", Category: "Chemistry", Completed: true},
		{ID: "3", Category: "Math", Completed: true},
		{ID: "4", Category: "English"},
	}
	got := domain.ChartData(tasks)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %+v", got)
	}
	if got[0].Name != "Math" || got[0].Completed != 2 {
		t.Fatalf("unexpected first point: %+v", got[0])
	}
	if got[1].Name != "Chemistry" || got[1].Completed != 1 {
		t.Fatalf("unexpected second point: %+v", got[1])
	}
}

func TestChartDataFallsBackToGeneral(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{{ID: "1", Completed: true}}
	got := domain.ChartData(tasks)
	if len(got) != 1 || got[0].Name != domain.FallbackCategory || got[0].Placeholder {
		t.Fatalf("expected General point, got %+v", got)
	}
}

func TestChartDataPlaceholderWhenNothingCompleted(t *testing.T) {
	t.Parallel()
	got := domain.ChartData([]domain.Task{{ID: "1", Category: "Math"}})
	if len(got) != 1 {
		t.Fatalf("expected single placeholder, got %+v", got)
	}
	if !got[0].Placeholder || got[0].Completed != 0 {
		t.Fatalf("placeholder must be marked and empty, got %+v", got[0])
	}
}
