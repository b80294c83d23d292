package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry manages all services
type Registry struct {
	services []Interface
	started  int
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

// Register adds a service to the registry. Services start in registration order.
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// Len is the number of registered services
func (sr *Registry) Len() int {
	return len(sr.services)
}

// StartAll starts all registered services. If one fails, the services already
// started are stopped again and the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			zap.L().Error("Service failed to start", zap.String("service", fmt.Sprintf("%T", service)), zap.Error(err))
			sr.stopFrom(i - 1)
			sr.started = 0
			return fmt.Errorf("start %T: %w", service, err)
		}
		sr.started = i + 1
		zap.L().Debug("Service started", zap.String("service", fmt.Sprintf("%T", service)))
	}
	return nil
}

// StopAll stops started services in reverse order
func (sr *Registry) StopAll() {
	sr.stopFrom(sr.started - 1)
	sr.started = 0
}

func (sr *Registry) stopFrom(last int) {
	for i := last; i >= 0; i-- {
		sr.services[i].Stop()
	}
}
