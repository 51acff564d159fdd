package exc

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/catcher/pkg/errors"
)

// Hierarchy is an explicit, finite description of the exception type tree.
// Applications declare each type with its parent; the hierarchy then stamps
// the full ancestor chain into exceptions it constructs.
//
// A Hierarchy is safe for concurrent use.
type Hierarchy struct {
	mu      sync.RWMutex
	parents map[string]string
}

// NewHierarchy creates an empty hierarchy. Root is always implicitly known.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		parents: make(map[string]string),
	}
}

// Declare registers a type under the given parent. An empty parent means
// Root. The parent must be Root or a previously declared type. Redeclaring a
// type with the same parent is a no-op; redeclaring with a different parent
// fails.
func (h *Hierarchy) Declare(name, parent string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "exception type name cannot be empty")
	}
	if name == Root {
		return errors.Newf(errors.ErrInvalidInput, "cannot redeclare the root type %q", Root)
	}
	if parent == "" {
		parent = Root
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if parent != Root {
		if _, known := h.parents[parent]; !known {
			return errors.Newf(errors.ErrTypeUnknown, "parent type %q is not declared", parent)
		}
	}
	if existing, ok := h.parents[name]; ok {
		if existing == parent {
			return nil
		}
		return errors.Newf(errors.ErrTypeConflict,
			"type %q already declared under %q, cannot move to %q", name, existing, parent)
	}

	h.parents[name] = parent
	return nil
}

// MustDeclare declares a type and panics if the declaration fails.
// This is useful for init() functions where a conflict is a programming error.
func (h *Hierarchy) MustDeclare(name, parent string) {
	if err := h.Declare(name, parent); err != nil {
		panic(fmt.Sprintf("failed to declare %s: %v", name, err))
	}
}

// Known reports whether name is Root or a declared type.
func (h *Hierarchy) Known(name string) bool {
	if name == Root {
		return true
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.parents[name]
	return ok
}

// Chain returns the ancestor chain of name, nearest first, ending in Root.
// Root itself has an empty chain; an undeclared type's chain is just [Root].
func (h *Hierarchy) Chain(name string) []string {
	if name == Root {
		return nil
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var chain []string
	for cur := name; ; {
		parent, ok := h.parents[cur]
		if !ok {
			parent = Root
		}
		chain = append(chain, parent)
		if parent == Root {
			return chain
		}
		cur = parent
	}
}

// Types returns all declared type names in sorted order, excluding Root.
func (h *Hierarchy) Types() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.parents))
	for name := range h.parents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parent returns the declared parent of name, or Root if name is undeclared.
func (h *Hierarchy) Parent(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if parent, ok := h.parents[name]; ok {
		return parent
	}
	return Root
}

// New constructs an exception of the given type with its ancestor chain
// taken from the hierarchy.
func (h *Hierarchy) New(typeName, message string) *Exception {
	return &Exception{
		Type:     typeName,
		Ancestry: h.Chain(typeName),
		Message:  message,
	}
}

// Newf constructs an exception with a formatted message.
func (h *Hierarchy) Newf(typeName, format string, args ...interface{}) *Exception {
	return h.New(typeName, fmt.Sprintf(format, args...))
}
