package events

// Event is an immutable payload carried from the model to its observers.
// The set of variants is closed: only this package can add one.
type Event interface {
	Info() any
	event()
}

// SetPathEvent asks surfaces to display a new destination path.
type SetPathEvent struct {
	Path string
}

// Info returns the path.
func (e SetPathEvent) Info() any { return e.Path }

func (SetPathEvent) event() {}

// EndTaskEvent reports that a task finished, with an arbitrary result.
type EndTaskEvent struct {
	Result any
}

// Info returns the task result.
func (e EndTaskEvent) Info() any { return e.Result }

func (EndTaskEvent) event() {}
