package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigin(t *testing.T) {
	t.Run("innermost stack wins", func(t *testing.T) {
		inner := WithStack(New("connection reset"))
		outer := Wrap(inner, "failed to load course")

		assert.True(t, strings.HasPrefix(Origin(outer), "errors_test.go:"), Origin(outer))
		assert.Equal(t, Origin(inner), Origin(outer))
	})

	t.Run("survives stdlib wrapping", func(t *testing.T) {
		inner := Errorf("course %d missing", 10)
		outer := fmt.Errorf("handler: %w", inner)

		assert.Equal(t, Origin(inner), Origin(outer))
		assert.NotEmpty(t, Origin(outer))
	})

	t.Run("no stack recorded", func(t *testing.T) {
		assert.Empty(t, Origin(New("plain")))
		assert.Empty(t, Origin(nil))
	})
}

func TestAsType(t *testing.T) {
	type codeError struct{ error }

	err := Wrap(codeError{New("boom")}, "outer")

	got, ok := AsType[codeError](err)
	assert.True(t, ok)
	assert.EqualError(t, got, "boom")

	_, ok = AsType[codeError](New("other"))
	assert.False(t, ok)
}
