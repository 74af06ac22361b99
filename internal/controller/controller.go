package controller

import (
	"log"

	"layoutkit/internal/core/apperr"
	"layoutkit/internal/core/events"
	"layoutkit/internal/core/layout"
	"layoutkit/internal/core/model"
	"layoutkit/internal/core/observer"
)

// View is a presentation surface driven by the controller.
type View interface {
	observer.Observer
	Start()
}

// ViewFactory builds a presentation surface bound to controller.
type ViewFactory func(controller *Controller) View

// Controller mediates between the model and one presentation surface.
type Controller struct {
	model *model.Model
	view  View
}

// New builds the view and registers it as an observer of model.
func New(model *model.Model, factory ViewFactory) *Controller {
	controller := &Controller{model: model}
	controller.view = factory(controller)
	model.Register(controller.view)
	return controller
}

// View returns the presentation surface built at construction.
func (controller *Controller) View() View {
	return controller.view
}

// Start hands control to the view.
func (controller *Controller) Start() {
	controller.view.Start()
}

// CollectMetrics is the business entry point for the collect action.
func (controller *Controller) CollectMetrics(destination string, paths []string, option string) {
	log.Printf("collect metrics: destination=%q paths=%d option=%q", destination, len(paths), option)
}

// SubmitLayout publishes an accepted layout request.
func (controller *Controller) SubmitLayout(request layout.Request) {
	controller.model.Notify(events.SetPathEvent{Path: request.BaseDir})
	controller.model.Notify(events.EndTaskEvent{Result: request.String()})
}

// ReportError sends err to the observers as an *apperr.Error.
func (controller *Controller) ReportError(err error) {
	if err == nil {
		return
	}
	controller.model.Notify(apperr.From(err))
}
