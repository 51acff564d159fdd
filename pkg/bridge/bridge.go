// Package bridge installs the catcher registry as a host runtime's global
// error and exception interceptors. Raw runtime errors are filtered through
// the host's error-reporting mask, converted into typed exceptions, and
// dispatched; uncaught exceptions are forwarded as-is. Restore puts the
// host's previous callbacks back and clears the registry.
package bridge

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/catcher/pkg/errors"
	"github.com/arthur-debert/catcher/pkg/exc"
	"github.com/arthur-debert/catcher/pkg/logging"
	"github.com/arthur-debert/catcher/pkg/registry"
)

// Bridge wires a registry into a Host's interception slots.
type Bridge struct {
	mu        sync.Mutex
	reg       *registry.Registry
	hier      *exc.Hierarchy
	host      Host
	out       io.Writer
	prevErr   ErrorFunc
	prevExc   ExceptionFunc
	defaultOn bool
	installed bool
	log       zerolog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithOutput sets the writer the default catch-all prints diagnostics to.
// Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(b *Bridge) {
		b.out = w
	}
}

// WithHierarchy supplies the hierarchy used when synthesizing exceptions
// from raw runtime errors. Install declares the runtime error types into it.
func WithHierarchy(h *exc.Hierarchy) Option {
	return func(b *Bridge) {
		b.hier = h
	}
}

// WithDefaultCatcher controls whether Install registers the catch-all
// diagnostic catcher. Enabled unless turned off.
func WithDefaultCatcher(enabled bool) Option {
	return func(b *Bridge) {
		b.defaultOn = enabled
	}
}

// New creates a bridge between the registry and the host. The bridge is
// inert until Install is called.
func New(reg *registry.Registry, host Host, opts ...Option) *Bridge {
	b := &Bridge{
		reg:       reg,
		host:      host,
		out:       os.Stderr,
		defaultOn: true,
		log:       logging.GetLogger("bridge"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Install registers a default catch-all catcher for the root type and
// installs the bridge's callbacks with the host, remembering whatever the
// host had installed so Restore can put it back.
func (b *Bridge) Install() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.installed {
		return errors.New(errors.ErrAlreadyExists, "bridge is already installed")
	}

	if b.hier != nil {
		for _, sev := range []Severity{SevError, SevWarning, SevNotice, SevDeprecated} {
			if err := b.hier.Declare(sev.TypeName(), exc.Root); err != nil {
				return err
			}
		}
	}

	if b.defaultOn {
		if err := b.reg.Register(exc.Root, b.defaultCatcher); err != nil {
			return err
		}
	}

	b.prevErr = b.host.InstallErrorCallback(b.onError)
	b.prevExc = b.host.InstallExceptionCallback(b.onException)
	b.installed = true

	b.log.Debug().Str("reporting", b.host.ErrorReporting().String()).Msg("Interception installed")
	return nil
}

// Restore uninstalls the bridge: the host gets its previous callbacks back
// and the registry is cleared.
func (b *Bridge) Restore() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.installed {
		return errors.New(errors.ErrInvalidInput, "bridge is not installed")
	}

	b.host.InstallErrorCallback(b.prevErr)
	b.host.InstallExceptionCallback(b.prevExc)
	b.prevErr = nil
	b.prevExc = nil
	b.reg.Clear()
	b.installed = false

	b.log.Debug().Msg("Interception restored")
	return nil
}

// Installed reports whether the bridge's callbacks are currently active.
func (b *Bridge) Installed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.installed
}

// onError is the raw runtime error callback. Severities outside the host's
// reporting mask are dropped entirely; the rest are wrapped as typed
// exceptions and dispatched.
func (b *Bridge) onError(sev Severity, message, file string, line int) {
	mask := b.host.ErrorReporting()
	if !mask.Has(sev) {
		b.log.Trace().
			Str("severity", sev.String()).
			Str("reporting", mask.String()).
			Msg("Runtime error outside reporting mask, dropped")
		return
	}

	typeName := sev.TypeName()
	var e *exc.Exception
	if b.hier != nil {
		e = b.hier.New(typeName, message)
	} else {
		e = exc.New(typeName, message)
	}
	e.WithLocation(file, line).WithCode(int(sev))

	b.dispatch(e)
}

// onException is the uncaught exception callback: a straight forward.
func (b *Bridge) onException(e *exc.Exception) {
	b.dispatch(e)
}

// dispatch runs the exception through the registry. There is no caller to
// return a result to here, so dispatch failures are only logged.
func (b *Bridge) dispatch(e *exc.Exception) {
	if _, err := b.reg.Handle(e); err != nil {
		b.log.Debug().Err(err).Str("type", e.Type).Msg("Exception dispatch failed")
	}
}

// defaultCatcher prints the standard diagnostic for anything no other
// catcher claimed.
func (b *Bridge) defaultCatcher(e *exc.Exception) (interface{}, error) {
	_, err := fmt.Fprintln(b.out, registry.Format(e))
	return nil, err
}
