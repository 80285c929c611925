package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DefaultRenderer is resolved when a lookup names no renderer.
const DefaultRenderer = "html"

// ErrRendererNotFound is returned by Get for unregistered names.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry maps renderer names to renderers. Names are matched trimmed and
// lowercased, so "HTML " finds the html renderer.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	fallback  string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDefault changes the renderer resolved for an empty name.
func WithDefault(name string) RegistryOption {
	return func(r *Registry) {
		if key := normalizeName(name); key != "" {
			r.fallback = key
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		renderers: make(map[string]Renderer),
		fallback:  DefaultRenderer,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register adds renderer under its Name(). Duplicates are rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	key := normalizeName(renderer.Name())
	if key == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[key]; exists {
		return fmt.Errorf("render: renderer %q already registered", key)
	}
	r.renderers[key] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer for name, or the default renderer when name is
// blank.
func (r *Registry) Get(name string) (Renderer, error) {
	key := r.resolve(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrRendererNotFound, key, strings.Join(r.namesLocked(), ", "))
	}
	return renderer, nil
}

// MustGet panics if the renderer is missing.
func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Has reports whether name resolves to a registered renderer.
func (r *Registry) Has(name string) bool {
	key := r.resolve(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.renderers[key]
	return ok
}

func (r *Registry) resolve(name string) string {
	if key := normalizeName(name); key != "" {
		return key
	}
	return r.fallback
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
