package bridge

import (
	"strings"

	"github.com/arthur-debert/catcher/pkg/errors"
)

// Severity is a bit mask of runtime error severities. The host's current
// error-reporting mask decides which severities reach the registry at all.
type Severity uint32

const (
	SevError Severity = 1 << iota
	SevWarning
	SevNotice
	SevDeprecated
)

// SevAll enables every severity.
const SevAll = SevError | SevWarning | SevNotice | SevDeprecated

// SevNone disables all severities.
const SevNone Severity = 0

var severityNames = []struct {
	sev  Severity
	name string
}{
	{SevError, "error"},
	{SevWarning, "warning"},
	{SevNotice, "notice"},
	{SevDeprecated, "deprecated"},
}

// Has reports whether the mask includes the given severity bits.
func (s Severity) Has(flag Severity) bool {
	return s&flag != 0
}

// String returns the mask as a pipe-separated list of severity names.
func (s Severity) String() string {
	if s == SevNone {
		return "none"
	}
	if s == SevAll {
		return "all"
	}
	var parts []string
	for _, sn := range severityNames {
		if s.Has(sn.sev) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// TypeName maps a severity to the exception type synthesized for it.
func (s Severity) TypeName() string {
	switch {
	case s.Has(SevDeprecated):
		return "DeprecationNotice"
	case s.Has(SevNotice):
		return "RuntimeNotice"
	case s.Has(SevWarning):
		return "RuntimeWarning"
	default:
		return "RuntimeError"
	}
}

// ParseSeverity resolves a single severity name.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return SevError, nil
	case "warning":
		return SevWarning, nil
	case "notice":
		return SevNotice, nil
	case "deprecated":
		return SevDeprecated, nil
	case "all":
		return SevAll, nil
	case "none":
		return SevNone, nil
	default:
		return SevNone, errors.Newf(errors.ErrInvalidInput, "unknown severity %q", name)
	}
}

// ParseMask combines a list of severity names into a mask.
func ParseMask(names []string) (Severity, error) {
	mask := SevNone
	for _, name := range names {
		sev, err := ParseSeverity(name)
		if err != nil {
			return SevNone, err
		}
		mask |= sev
	}
	return mask, nil
}
