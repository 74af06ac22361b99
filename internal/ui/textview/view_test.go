package textview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layoutkit/internal/controller"
	"layoutkit/internal/core/apperr"
	"layoutkit/internal/core/events"
	"layoutkit/internal/core/model"
	"layoutkit/internal/ui/preferences"
)

func newView(t *testing.T, input string) (*View, *model.Model, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	appModel := model.New()
	ctrl := controller.New(appModel, Factory(strings.NewReader(input), &out, preferences.Settings{DestinationPath: "/start"}))
	view, ok := ctrl.View().(*View)
	require.True(t, ok)
	return view, appModel, &out
}

func TestView_RendersNotifications(t *testing.T) {
	view, appModel, out := newView(t, "")

	appModel.Notify("plain line")
	appModel.Notify(events.SetPathEvent{Path: "/srv/out"})
	appModel.Notify(events.EndTaskEvent{Result: "task done"})
	appModel.Notify(apperr.New("Datetime picker error", "more"))
	appModel.Notify("")

	text := out.String()
	assert.Contains(t, text, "plain line")
	assert.Contains(t, text, "destination: /srv/out")
	assert.Contains(t, text, "task done")
	assert.Contains(t, text, "error: Datetime picker error")
	assert.NotContains(t, text, "more")
	assert.Equal(t, "/srv/out", view.Destination())
	assert.Equal(t, 4, strings.Count(text, "\n"))
}

func TestView_CommandLoop(t *testing.T) {
	view, _, out := newView(t, "options\npath /data/out\nadd /data/a\nadd /data/b\ncollect option2\nclear\nquit\npath /ignored\n")

	view.Start()

	text := out.String()
	assert.Contains(t, text, "option1 option2 option3 option4")
	assert.Equal(t, "/data/out", view.Destination())
	assert.Empty(t, view.paths)
}

func TestView_CollectRejectsUnknownOption(t *testing.T) {
	view, _, out := newView(t, "collect nope\n")

	view.Start()

	assert.Contains(t, out.String(), `error: unknown option "nope"`)
}

func TestView_PathsAccumulate(t *testing.T) {
	view, _, _ := newView(t, "add /x\nadd /y z\n")

	view.Start()

	assert.Equal(t, []string{"/x", "/y z"}, view.paths)
}
