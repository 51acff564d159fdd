package registry

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/catcher/pkg/errors"
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/logging"
)

// Handler is a catcher function invoked with a matching exception. It may
// return an arbitrary result, an error, or neither.
type Handler func(e *exc.Exception) (interface{}, error)

// Catcher is a handler tagged with its target type. Registering a Catcher is
// equivalent to registering its handler explicitly for Target(). This is the
// reflection-free way to carry a "declared parameter type" on a handler.
type Catcher interface {
	// Target returns the exception type identifier this catcher handles.
	Target() string

	// Handle processes a matching exception.
	Handle(e *exc.Exception) (interface{}, error)
}

// For tags a handler with an explicit target type, producing a Catcher.
func For(target string, h Handler) Catcher {
	return &typedCatcher{target: target, fn: h}
}

type typedCatcher struct {
	target string
	fn     Handler
}

func (c *typedCatcher) Target() string { return c.target }

func (c *typedCatcher) Handle(e *exc.Exception) (interface{}, error) { return c.fn(e) }

// Registry holds the ordered catcher entries and dispatches exceptions to
// the most recently registered matching handler.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	catchers map[string]Handler
	log      zerolog.Logger
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		catchers: make(map[string]Handler),
		log:      logging.GetLogger("registry"),
	}
}

// Register adds or replaces the catcher for the given target type. Replacing
// an existing target keeps the dispatch position of its first registration.
func (r *Registry) Register(target string, h Handler) error {
	if target == "" {
		return errors.New(errors.ErrInvalidInput, "catcher target type cannot be empty")
	}
	if h == nil {
		return errors.Newf(errors.ErrInvalidInput, "catcher for %q must have a handler", target)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.catchers[target]; !exists {
		r.order = append(r.order, target)
	}
	r.catchers[target] = h

	r.log.Debug().Str("target", target).Int("catchers", len(r.order)).Msg("Catcher registered")
	return nil
}

// RegisterCatcher registers a handler whose target is carried by the value
// itself: a Catcher uses its declared target, while a bare Handler (or a
// function of the same shape) defaults to the root type and catches any
// exception. Anything else is an invalid registration.
func (r *Registry) RegisterCatcher(v interface{}) error {
	switch h := v.(type) {
	case nil:
		return errors.New(errors.ErrInvalidInput, "no catcher target or handler supplied")
	case Catcher:
		return r.Register(h.Target(), h.Handle)
	case Handler:
		return r.Register(exc.Root, h)
	case func(*exc.Exception) (interface{}, error):
		return r.Register(exc.Root, h)
	default:
		return errors.Newf(errors.ErrInvalidInput, "catcher must be a Handler or Catcher, got %T", v)
	}
}

// Handle dispatches the exception to the most recently registered catcher
// whose target matches it, returning that handler's result. At most one
// handler runs. When no catcher matches, Handle returns an UNMATCHED error
// so callers can tell "handled, returned nothing" from "nothing matched".
func (r *Registry) Handle(e *exc.Exception) (interface{}, error) {
	if e == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot dispatch a nil exception")
	}

	target, h := r.match(e)
	if h == nil {
		r.log.Debug().Str("type", e.Type).Msg("No catcher matched")
		return nil, errors.Newf(errors.ErrUnmatched, "no catcher registered for exception type %q", e.Type)
	}

	r.log.Debug().Str("type", e.Type).Str("target", target).Msg("Dispatching exception")
	return h(e)
}

// match finds the winning catcher under the read lock. The handler is
// invoked by the caller after the lock is released, so handlers can safely
// re-enter the registry.
func (r *Registry) match(e *exc.Exception) (string, Handler) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		target := r.order[i]
		if e.Matches(target) {
			return target, r.catchers[target]
		}
	}
	return "", nil
}

// Has checks if a catcher is registered for the exact target type
func (r *Registry) Has(target string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.catchers[target]
	return exists
}

// Targets returns the registered target types in insertion order
func (r *Registry) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets := make([]string, len(r.order))
	copy(targets, r.order)
	return targets
}

// Count returns the number of registered catchers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Clear removes all catchers from the registry
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.catchers = make(map[string]Handler)
}
