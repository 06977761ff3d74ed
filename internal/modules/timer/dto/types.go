package dto

// State mirrors the live timer snapshot across the usecase boundary. The
// presentation layer holds it between ticks and hands it back on mutation.
type State struct {
	Running     bool
	WorkSession bool
	Remaining   int
}
