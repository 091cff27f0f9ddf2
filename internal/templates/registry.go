package templates

import (
	"fmt"
	"sync"

	"github.com/nfrund/esperanca/internal/domain"
)

// Registry holds named fragment templates shared between components.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]string)}
}

// Register stores tmpl under name, replacing any previous definition.
func (r *Registry) Register(name, tmpl string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[name] = tmpl
}

// Execute renders the named template with data.
func (r *Registry) Execute(name string, data map[string]any) (string, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %q: %w", name, domain.ErrNotFound)
	}
	return Render(tmpl, data), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[name]
	return ok
}
