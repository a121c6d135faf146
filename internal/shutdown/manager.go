// Package shutdown translates external termination signals into an orderly
// stop, so SIGINT/SIGTERM behaves like a window-manager close.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"deskclock/internal/logger"
)

type Stoppable interface {
	Stop()
}

type Manager struct {
	mu         sync.Mutex
	components []Stoppable
	logger     logger.Logger
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(component Stoppable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
}

// Listen installs the signal handler. Signals trigger the same teardown a
// right-click dismissal does.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.logger.Info("Shutdown", "termination signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown stops registered components in reverse registration order.
// Subsequent calls are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	for i := len(m.components) - 1; i >= 0; i-- {
		m.components[i].Stop()
	}
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
