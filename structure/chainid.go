package structure

// TruncateChainIDs implements the chain_id_truncate legacy option: it
// rewrites every residue's Chain to its first character, matching the
// one-character chain-ID convention of the legacy PDB format. It is a
// pre-processing pass over an already-built Structure, never folded into
// ResidueID's own invariants, so callers that don't opt in keep full
// multi-character chain IDs (as mmCIF routinely uses) intact.
func TruncateChainIDs(s *Structure) {
	for i := range s.Residues {
		chain := s.Residues[i].ID.Chain
		if len(chain) > 1 {
			s.Residues[i].ID.Chain = chain[:1]
		}
	}
}
