package model

import "layoutkit/internal/core/observer"

// Model is the application state. It owns no business fields yet and acts
// as the single notification source every presentation surface attaches to.
type Model struct {
	observer.Observable
}

// New creates the application model.
func New() *Model {
	return &Model{}
}
