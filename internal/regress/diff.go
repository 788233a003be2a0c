// Package regress implements the §6.1 byte-exact regression gate: a
// strict text-record comparison for tooling that needs more than the
// set-equivalence-at-the-field-level default.
package regress

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff is one contiguous difference between two text records.
type Diff struct {
	Equal bool
	Text  string
}

// CompareText runs a byte-exact diff between two canonical text records
// (typically emit.WriteText output), returning the diff chunks and
// whether the two are identical.
//
// Grounded on abondrn-poly's go.mod, which carries go-diff transitively
// through testify's require.Equal failure-message diffing; no example
// repo drives diffmatchpatch directly, so its API is used exactly as
// documented rather than imitated from a call site in the pack.
func CompareText(a, b string) (identical bool, diffs []Diff) {
	dmp := diffmatchpatch.New()
	raw := dmp.DiffMain(a, b, false)
	raw = dmp.DiffCleanupSemantic(raw)

	identical = true
	for _, d := range raw {
		if d.Type != diffmatchpatch.DiffEqual {
			identical = false
		}
		diffs = append(diffs, Diff{Equal: d.Type == diffmatchpatch.DiffEqual, Text: d.Text})
	}
	return identical, diffs
}

// FormatDiff renders diff chunks as a human-readable unified-style
// summary for CLI output.
func FormatDiff(diffs []Diff) string {
	var out string
	for _, d := range diffs {
		if d.Equal {
			continue
		}
		out += fmt.Sprintf("%q\n", d.Text)
	}
	return out
}
