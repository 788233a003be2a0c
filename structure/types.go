package structure

import "fmt"

// Atom is a single atom record. Identity within a residue is
// (Name, AltLoc); the core assumes alternate locations have already been
// collapsed by the upstream parser, so AltLoc is carried for provenance
// only and never consulted to disambiguate atoms.
type Atom struct {
	Name      string
	Element   string
	X, Y, Z   float64
	AltLoc    byte
	Occupancy float64
	BFactor   float64
}

func (a Atom) String() string {
	return fmt.Sprintf("%-4s [%0.3f %0.3f %0.3f]", a.Name, a.X, a.Y, a.Z)
}

// Vec returns the atom's coordinates as a Vec3.
func (a Atom) Vec() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// ResidueID identifies a residue within a structure. The identity tuple is
// unique within a Structure; a chain_id_truncate pre-processing pass (see
// TruncateChainIDs) may collapse Chain to its first character before this
// identity is used for indexing, but ResidueID itself never enforces that.
type ResidueID struct {
	Chain  string
	ResSeq int
	ICode  byte
	Model  int
}

func (id ResidueID) String() string {
	if id.ICode == 0 || id.ICode == ' ' {
		return fmt.Sprintf("%s:%d", id.Chain, id.ResSeq)
	}
	return fmt.Sprintf("%s:%d_%c", id.Chain, id.ResSeq, id.ICode)
}

// Residue is a single residue: an identity, a three-letter (or longer,
// for some mmCIF component IDs) residue name, and the half-open range of
// indices into the owning Structure's Atoms slice.
type Residue struct {
	ID             ResidueID
	Name           string
	AtomStart, AtomEnd int
}

// Atoms returns the atom slice for this residue, given the owning
// Structure's atom table.
func (r Residue) Atoms(all []Atom) []Atom {
	return all[r.AtomStart:r.AtomEnd]
}

// AtomByName returns the first atom in the residue's range with the given
// (already-canonicalized) name, or false if none is present.
func (r Residue) AtomByName(all []Atom, name string) (Atom, bool) {
	for _, a := range all[r.AtomStart:r.AtomEnd] {
		if a.Name == name {
			return a, true
		}
	}
	return Atom{}, false
}

// HasAtoms reports whether every named atom is present in the residue.
func (r Residue) HasAtoms(all []Atom, names ...string) bool {
	for _, n := range names {
		if _, ok := r.AtomByName(all, n); !ok {
			return false
		}
	}
	return true
}

// Structure is a parsed macromolecular structure: a flat atom table and
// the residues that index into it, in upstream presentation order. A
// Structure is built once and never mutated after construction.
type Structure struct {
	Atoms    []Atom
	Residues []Residue
}
