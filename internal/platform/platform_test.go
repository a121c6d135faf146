package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopControllerIsHarmless(t *testing.T) {
	assert := assert.New(t)

	c := Noop()
	assert.Equal("noop", c.Name())

	assert.ErrorIs(c.RaiseAboveAll(), ErrUnsupported)
	assert.ErrorIs(c.Move(10, 20), ErrUnsupported)

	_, _, err := c.Position()
	assert.ErrorIs(err, ErrUnsupported)

	w, err := c.ScreenWidth()
	assert.Zero(w)
	assert.True(errors.Is(err, ErrUnsupported))
}
