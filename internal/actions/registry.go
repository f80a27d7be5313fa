package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	// ErrDuplicateAction is returned when a name is registered twice.
	ErrDuplicateAction = errors.New("action already registered")

	// ErrNilHandler is returned when a registration carries no handler.
	ErrNilHandler = errors.New("action handler is nil")

	// ErrEmptyName is returned when a registration carries no name.
	ErrEmptyName = errors.New("action name is empty")
)

// HandlerFunc executes one action call with raw JSON arguments and
// returns a JSON payload. Handlers must honor ctx cancellation; the
// dispatcher enforces a timeout around every invocation regardless.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// Registration describes one named action available to the game master.
type Registration struct {
	// Name is the unique action name the model requests it by.
	Name string

	// Tags are capability labels ("mutates-progress",
	// "generates-asset", ...) used for observability and routing
	// policy, never for dispatch correctness.
	Tags []string

	// Timeout overrides the dispatcher's default per-action timeout
	// when positive.
	Timeout time.Duration

	Handler HandlerFunc
}

// Registry holds the fixed lookup table of action handlers. Handlers
// are registered at startup from configuration; the table does not
// change while episodes are running, but registration is still
// lock-guarded so tests can build registries concurrently.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Registration)}
}

// Register adds an action. Names are unique; re-registration fails.
func (r *Registry) Register(reg Registration) error {
	if reg.Name == "" {
		return ErrEmptyName
	}
	if reg.Handler == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, reg.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[reg.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, reg.Name)
	}
	r.entries[reg.Name] = reg
	return nil
}

// MustRegister registers and panics on error. Startup wiring only.
func (r *Registry) MustRegister(reg Registration) {
	if err := r.Register(reg); err != nil {
		panic(err)
	}
}

// Lookup returns the registration for a name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[name]
	return reg, ok
}

// Names returns all registered action names, sorted. The renderer
// includes these in the game-master context.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tags returns the capability tags for a registered action.
func (r *Registry) Tags(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[name].Tags
}
