package lambda

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"invoicing-api/internal/config"
	"invoicing-api/pkg/server"
)

// ConnectionManager keeps the container and router alive across warm invocations
type ConnectionManager struct {
	mu        sync.Mutex
	config    *config.Config
	container *server.Container
	handler   http.Handler
	lastUsed  time.Time

	// loadConfig is used when no configuration was provided
	loadConfig func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(nil)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager for cfg. A nil cfg is loaded from the
// environment on first use.
func NewConnectionManager(cfg *config.Config) *ConnectionManager {
	return &ConnectionManager{config: cfg, loadConfig: config.GetOptimizedConfig}
}

// Handler returns the HTTP handler, building the container on first use.
// A failed initialization is retried on the next invocation.
func (cm *ConnectionManager) Handler(ctx context.Context) (http.Handler, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.handler != nil {
		cm.lastUsed = time.Now()
		return cm.handler, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cm.config == nil {
		cfg, err := cm.loadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cm.config = cfg
	}

	container, err := server.NewContainer(cm.config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	cm.container = container
	cm.handler = container.Router()
	cm.lastUsed = time.Now()
	return cm.handler, nil
}

// IsHealthy reports whether the container is initialized and its database reachable
func (cm *ConnectionManager) IsHealthy(ctx context.Context) bool {
	cm.mu.Lock()
	container := cm.container
	cm.mu.Unlock()

	return container != nil && container.Health(ctx) == nil
}

// LastUsed returns the time of the last served invocation
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.lastUsed
}

// Cleanup closes the container. The next invocation builds a new one.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		return nil
	}
	err := cm.container.Close()
	cm.container = nil
	cm.handler = nil
	return err
}
