package entity

import "fmt"

// ProgressKind identifies a stage in the lifecycle of an icon request.
type ProgressKind int

const (
	ProgressStarted ProgressKind = iota
	ProgressLoading
	ProgressCompleted
	ProgressFailed
)

func (k ProgressKind) String() string {
	switch k {
	case ProgressStarted:
		return "started"
	case ProgressLoading:
		return "loading"
	case ProgressCompleted:
		return "completed"
	case ProgressFailed:
		return "failed"
	default:
		return fmt.Sprintf("ProgressKind(%d)", int(k))
	}
}

// ProgressEvent is one lifecycle notification for an icon request.
// Only the field matching Kind is populated.
type ProgressEvent struct {
	Kind     ProgressKind
	Fraction float64
	Icon     *Icon
	Err      error
}

// Started returns the event emitted when a request begins.
func Started() ProgressEvent {
	return ProgressEvent{Kind: ProgressStarted}
}

// Loading returns an intermediate progress event. Fraction is clamped to [0, 1].
func Loading(fraction float64) ProgressEvent {
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	return ProgressEvent{Kind: ProgressLoading, Fraction: fraction}
}

// Completed returns the terminal success event.
func Completed(icon *Icon) ProgressEvent {
	return ProgressEvent{Kind: ProgressCompleted, Fraction: 1, Icon: icon}
}

// Failed returns the terminal failure event.
func Failed(err error) ProgressEvent {
	return ProgressEvent{Kind: ProgressFailed, Err: err}
}

// IsTerminal reports whether no further events follow this one.
func (e ProgressEvent) IsTerminal() bool {
	return e.Kind == ProgressCompleted || e.Kind == ProgressFailed
}
