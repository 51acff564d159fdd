package bridge

import (
	"sync"

	"github.com/arthur-debert/catcher/pkg/exc"
)

// ErrorFunc is a host callback for raw runtime errors.
type ErrorFunc func(sev Severity, message, file string, line int)

// ExceptionFunc is a host callback for uncaught exceptions.
type ExceptionFunc func(e *exc.Exception)

// Host is the ambient runtime contract the bridge installs into: slots for a
// global error callback and a global uncaught-exception callback, plus the
// current error-reporting mask. Installing a callback returns the previous
// one so it can be restored later.
type Host interface {
	InstallErrorCallback(cb ErrorFunc) (prev ErrorFunc)
	InstallExceptionCallback(cb ExceptionFunc) (prev ExceptionFunc)
	ErrorReporting() Severity
}

// ProcessHost is an in-process Host implementation: a pair of callback slots
// and a settable reporting mask. It stands in for a real runtime in tests
// and in applications that surface their own errors through RaiseError and
// RaiseException.
type ProcessHost struct {
	mu    sync.RWMutex
	errCb ErrorFunc
	excCb ExceptionFunc
	mask  Severity
}

// NewProcessHost creates a host with the given reporting mask and no
// callbacks installed.
func NewProcessHost(mask Severity) *ProcessHost {
	return &ProcessHost{mask: mask}
}

// InstallErrorCallback swaps in a new error callback and returns the old one.
func (p *ProcessHost) InstallErrorCallback(cb ErrorFunc) ErrorFunc {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.errCb
	p.errCb = cb
	return prev
}

// InstallExceptionCallback swaps in a new exception callback and returns the old one.
func (p *ProcessHost) InstallExceptionCallback(cb ExceptionFunc) ExceptionFunc {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.excCb
	p.excCb = cb
	return prev
}

// ErrorReporting returns the current severity mask.
func (p *ProcessHost) ErrorReporting() Severity {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mask
}

// SetErrorReporting replaces the severity mask and returns the old one.
func (p *ProcessHost) SetErrorReporting(mask Severity) Severity {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.mask
	p.mask = mask
	return prev
}

// RaiseError invokes the installed error callback, if any.
func (p *ProcessHost) RaiseError(sev Severity, message, file string, line int) {
	p.mu.RLock()
	cb := p.errCb
	p.mu.RUnlock()

	if cb != nil {
		cb(sev, message, file, line)
	}
}

// RaiseException invokes the installed exception callback, if any.
func (p *ProcessHost) RaiseException(e *exc.Exception) {
	p.mu.RLock()
	cb := p.excCb
	p.mu.RUnlock()

	if cb != nil {
		cb(e)
	}
}
