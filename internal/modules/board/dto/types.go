package dto

type TaskOutput struct {
	ID        string
	Title     string
	Category  string
	DueDate   string
	Completed bool
}

type AddTaskInput struct {
	Title    string
	Category string
	DueDate  string
}

type UpdateTaskInput struct {
	ID       string
	Title    string
	Category string
	DueDate  string
}

type FilterOutput struct {
	Status   string
	Category string
}

type TallyOutput struct {
	Open       int
	Completed  int
	Total      int
	Percentage int
}

type ChartPointOutput struct {
	Name        string
	Completed   int
	Placeholder bool
}

// OverviewOutput bundles the filtered list with every derived view so a
// single query is enough to render the whole board.
type OverviewOutput struct {
	Tasks      []TaskOutput
	Filter     FilterOutput
	Categories []string
	Tally      TallyOutput
	Chart      []ChartPointOutput
}
