package shutdown

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"deskclock/internal/logger"
)

type recorded struct {
	order *[]string
	name  string
}

func (r recorded) Stop() {
	*r.order = append(*r.order, r.name)
}

func testManager() *Manager {
	return NewManager(logger.NewZerolog(io.Discard, zerolog.Disabled))
}

func TestShutdownStopsInReverseOrder(t *testing.T) {
	assert := assert.New(t)

	m := testManager()
	var order []string
	m.Register(recorded{&order, "first"})
	m.Register(recorded{&order, "second"})

	m.Shutdown()
	assert.Equal([]string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed after shutdown")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	m := testManager()
	var order []string
	m.Register(recorded{&order, "only"})

	m.Shutdown()
	m.Shutdown()
	assert.Equal([]string{"only"}, order)
}
