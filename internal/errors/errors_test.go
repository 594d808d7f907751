package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsChain(t *testing.T) {
	wrapped := Wrap(Wrapf(errSentinel, "load owner %d", 7), "search")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "search: load owner 7: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsChain")
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAs(t *testing.T) {
	err := WithStack(&codedError{code: "E1"})

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "E1", target.code)
	assert.Equal(t, "E1", Errorf("%s", "E1").Error())
}
