// Package diag provides the side-channel diagnostic sink §9 calls for:
// "re-implement as an optional sink passed through the call chain, not
// as process-wide state." Skipped residues and ambiguous pairs are
// reported through a Sink rather than a package-level counter, so the
// engine stays safe to invoke concurrently across structures (§5).
package diag

import (
	"io"
	"log"
)

// Sink receives non-fatal diagnostics from the pairing engine: skipped
// residues (§7 SkippedResidue), ambiguous pairs (§7 AmbiguousPair), and
// the malformed-structure condition (§7 MalformedStructure) reported
// when the core is reached with zero recognised residues rather than
// being rejected upstream. A nil Sink is valid and discards everything.
type Sink interface {
	SkippedResidue(reason string, chain string, resseq int)
	AmbiguousPair(reason string, i, j int)
	MalformedStructure(reason string)
}

// Nop is a Sink that discards every diagnostic.
type Nop struct{}

func (Nop) SkippedResidue(string, string, int) {}
func (Nop) AmbiguousPair(string, int, int)     {}
func (Nop) MalformedStructure(string)          {}

// Logger is a Sink writing one line per diagnostic through a standard
// library *log.Logger, following the plain log.Printf/log.Fatalln style
// used throughout the corpus (no example repo imports a third-party
// logging library from application code, so the ambient logger here is
// stdlib by the same precedent).
type Logger struct {
	l *log.Logger
}

// NewLogger builds a Logger writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags)}
}

func (s *Logger) SkippedResidue(reason string, chain string, resseq int) {
	s.l.Printf("skipped residue %s:%d: %s", chain, resseq, reason)
}

func (s *Logger) AmbiguousPair(reason string, i, j int) {
	s.l.Printf("ambiguous pair (%d,%d): %s", i, j, reason)
}

func (s *Logger) MalformedStructure(reason string) {
	s.l.Printf("malformed structure: %s", reason)
}
