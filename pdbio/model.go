package pdbio

import "github.com/OOAAHH/RNAView/structure"

// FilterModel keeps only the residues (and their atoms) belonging to the
// given model number, renumbering atom ranges into a fresh, compacted
// Structure. If model is 0, model 1 is used, matching §6.3's
// "default picks model 1 when absent".
func FilterModel(s *structure.Structure, model int) *structure.Structure {
	if model == 0 {
		model = 1
	}
	var atoms []structure.Atom
	var residues []structure.Residue
	for _, r := range s.Residues {
		if r.ID.Model != model {
			continue
		}
		start := len(atoms)
		atoms = append(atoms, r.Atoms(s.Atoms)...)
		r.AtomStart, r.AtomEnd = start, len(atoms)
		residues = append(residues, r)
	}
	return &structure.Structure{Atoms: atoms, Residues: residues}
}
