package pairing

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// The four error kinds of §7, in ascending severity. SkippedResidue and
// AmbiguousPair never reach the caller as errors: the former is
// reported only via a diag.Sink side channel and absence from the
// output, the latter surfaces as a KindUnknown record. The zero
// recognised residues case named by MalformedStructure is likewise not
// an Analyze error return per §8 — it is reported via
// diag.Sink.MalformedStructure and Analyze returns a well-defined empty
// Result instead. ErrMalformedStructure remains exported for the truly
// exceptional case of a nil *structure.Structure reaching Analyze, and
// InternalInvariantViolation for a §3 invariant failing during
// finalization; both are distinguished with errors.Is.
var (
	// ErrMalformedStructure means Analyze was called without a parsed
	// structure at all; the upstream layer should never do this.
	ErrMalformedStructure = errors.New("pairing: malformed structure")

	// ErrInternalInvariantViolation means an invariant from §3 failed
	// during finalization: a programming error, never retried.
	ErrInternalInvariantViolation = errors.New("pairing: internal invariant violation")
)

// invariantError wraps ErrInternalInvariantViolation with a spew dump of
// the offending value, so a violation report is diagnosable without a
// debugger attached.
type invariantError struct {
	msg   string
	value interface{}
}

func (e *invariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInternalInvariantViolation, e.msg, spew.Sdump(e.value))
}

func (e *invariantError) Unwrap() error { return ErrInternalInvariantViolation }

func invariantViolation(msg string, value interface{}) error {
	return &invariantError{msg: msg, value: value}
}
