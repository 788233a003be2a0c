// Package structure holds the data model for a parsed macromolecular
// structure: atoms grouped into residues, residues grouped into chains,
// base-letter assignment for nucleic-acid residues, and the per-residue
// reference frames used by the pairing engine.
//
// Ownership follows a flat-array pattern: a Structure owns a contiguous
// Atoms slice, and each Residue refers into it by a half-open [Start, End)
// index range rather than holding its own atom slice. This avoids a graph
// of pointers and keeps a structure's memory contiguous and cache-friendly.
package structure
