package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func describe(event Event) string {
	switch typed := event.(type) {
	case SetPathEvent:
		return "path " + typed.Path
	case EndTaskEvent:
		return "end"
	default:
		return "unknown"
	}
}

func TestEvent_InfoCarriesPayload(t *testing.T) {
	assert.Equal(t, "/srv/out", SetPathEvent{Path: "/srv/out"}.Info())
	assert.Equal(t, 3, EndTaskEvent{Result: 3}.Info())
}

func TestEvent_VariantsAreDistinguishable(t *testing.T) {
	assert.Equal(t, "path /a", describe(SetPathEvent{Path: "/a"}))
	assert.Equal(t, "end", describe(EndTaskEvent{}))
}
