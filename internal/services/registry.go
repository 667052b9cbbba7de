// Package services provides the stateful collaborators behind termfolio's commands:
// markdown rendering, the trivia question bank and rate-limited HTTP requests.
// Services are registered once at startup and initialized together.
package services

import (
	"fmt"
	"sync"
)

// Service is implemented by every registered service.
type Service interface {
	Name() string
	Initialize() error
}

// Registry manages service registration and lifecycle.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	r.order = append(r.order, name)
	return nil
}

// GetService retrieves a service by name, returning an error if not found.
func (r *Registry) GetService(name string) (Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}

	return service, nil
}

// HasService reports whether a service with the given name is registered.
func (r *Registry) HasService(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.services[name]
	return exists
}

// InitializeAll initializes all registered services in registration order.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if err := r.services[name].Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}

	return nil
}

// Names returns the registered service names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Markdown returns the registered markdown service.
func (r *Registry) Markdown() (*MarkdownService, error) {
	return lookup[*MarkdownService](r, MarkdownServiceName)
}

// Trivia returns the registered trivia service.
func (r *Registry) Trivia() (*TriviaService, error) {
	return lookup[*TriviaService](r, TriviaServiceName)
}

// HTTP returns the registered HTTP request service.
func (r *Registry) HTTP() (*HTTPRequestService, error) {
	return lookup[*HTTPRequestService](r, HTTPRequestServiceName)
}

func lookup[T Service](r *Registry, name string) (T, error) {
	var zero T
	service, err := r.GetService(name)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has unexpected type %T", name, service)
	}
	return typed, nil
}
