package registry

import (
	"github.com/arthur-debert/catcher/pkg/exc"
)

// The package-level registry backs the convenience functions below. Most
// applications use one registry per process; tests and embedders that need
// isolation should create their own instances with New.
var defaultRegistry = New()

// Default returns the process-wide registry instance.
func Default() *Registry {
	return defaultRegistry
}

// Register adds or replaces a catcher in the default registry.
func Register(target string, h Handler) error {
	return defaultRegistry.Register(target, h)
}

// RegisterCatcher registers a self-targeted catcher in the default registry.
func RegisterCatcher(v interface{}) error {
	return defaultRegistry.RegisterCatcher(v)
}

// Handle dispatches an exception through the default registry.
func Handle(e *exc.Exception) (interface{}, error) {
	return defaultRegistry.Handle(e)
}

// Reset clears the default registry. Intended for tests and teardown.
func Reset() {
	defaultRegistry.Clear()
}
