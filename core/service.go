package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry starts services in registration order and stops them in reverse
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

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// Len returns the number of registered services
func (sr *Registry) Len() int {
	return len(sr.services)
}

// StartAll starts all registered services. If one fails, the services
// started before it are stopped again and the error is returned.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			log.Error().Err(err).Str("service", fmt.Sprintf("%T", service)).Msg("Failed to start service")
			sr.started = i
			sr.StopAll()
			return err
		}
	}
	sr.started = len(sr.services)
	return nil
}

// StopAll stops every started service in reverse order
func (sr *Registry) StopAll() {
	for i := sr.started - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
	sr.started = 0
}
