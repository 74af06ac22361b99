package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_FirstAndJoinedText(t *testing.T) {
	err := New("Datetime picker error", "hour out of range")

	assert.Equal(t, "Datetime picker error", err.First())
	assert.Equal(t, "Datetime picker error; hour out of range", err.Error())
}

func TestError_FirstOnEmpty(t *testing.T) {
	var nilErr *Error
	assert.Equal(t, "", nilErr.First())
	assert.Equal(t, "", New().First())
}

func TestFrom_UnwrapsWrappedError(t *testing.T) {
	inner := New("inner")
	wrapped := fmt.Errorf("build dialog: %w", inner)

	assert.Same(t, inner, From(wrapped))
}

func TestFrom_WrapsForeignError(t *testing.T) {
	got := From(errors.New("plain"))

	assert.Equal(t, []string{"plain"}, got.Messages)
	assert.Nil(t, From(nil))
}
