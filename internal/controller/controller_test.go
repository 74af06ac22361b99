package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoutkit/internal/core/apperr"
	"layoutkit/internal/core/events"
	"layoutkit/internal/core/layout"
	"layoutkit/internal/core/model"
)

type fakeView struct {
	controller *Controller
	values     []any
	started    bool
}

func (view *fakeView) Update(value any) { view.values = append(view.values, value) }
func (view *fakeView) Start()           { view.started = true }

func newFake(controller *Controller) View {
	return &fakeView{controller: controller}
}

func TestNew_RegistersBuiltView(t *testing.T) {
	appModel := model.New()

	controller := New(appModel, newFake)

	view := controller.View().(*fakeView)
	assert.Same(t, controller, view.controller)
	assert.Equal(t, 1, appModel.Len())

	appModel.Notify("line")
	assert.Equal(t, []any{"line"}, view.values)
}

func TestNew_RepeatedConstructionAddsObservers(t *testing.T) {
	appModel := model.New()

	first := New(appModel, newFake)
	second := New(appModel, newFake)
	appModel.Notify("x")

	assert.Equal(t, 2, appModel.Len())
	assert.Len(t, first.View().(*fakeView).values, 1)
	assert.Len(t, second.View().(*fakeView).values, 1)
}

func TestStart_DelegatesToView(t *testing.T) {
	controller := New(model.New(), newFake)

	controller.Start()

	assert.True(t, controller.View().(*fakeView).started)
}

func TestCollectMetrics_DoesNotNotify(t *testing.T) {
	controller := New(model.New(), newFake)

	controller.CollectMetrics("/tmp/out", []string{"/a", "/b"}, "option2")

	assert.Empty(t, controller.View().(*fakeView).values)
}

func TestSubmitLayout_SetsPathThenEndsTask(t *testing.T) {
	controller := New(model.New(), newFake)
	request := layout.Request{
		Form: layout.Form{BaseDir: "/projects", TemplatePath: "/tpl", Code: layout.Code{Prefix: "A", Body: "B", Suffix: "C"}},
		When: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC),
	}

	controller.SubmitLayout(request)

	values := controller.View().(*fakeView).values
	require.Len(t, values, 2)
	assert.Equal(t, events.SetPathEvent{Path: "/projects"}, values[0])
	assert.Equal(t, events.EndTaskEvent{Result: request.String()}, values[1])
}

func TestReportError_NotifiesStructuredError(t *testing.T) {
	controller := New(model.New(), newFake)

	controller.ReportError(errors.New("Datetime picker error"))
	controller.ReportError(nil)

	values := controller.View().(*fakeView).values
	require.Len(t, values, 1)
	appErr, ok := values[0].(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, "Datetime picker error", appErr.First())
}
