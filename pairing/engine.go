package pairing

import (
	"github.com/OOAAHH/RNAView/diag"
	"github.com/OOAAHH/RNAView/structure"
)

// Analyze runs the full base-pair detection and classification pipeline
// (C2 through C10) over an already-parsed Structure: letter assignment,
// frame construction, candidate filtering, hydrogen-bond enumeration,
// pair/stack classification, reduction, multiplet synthesis, and
// statistics. sink and prof may both be nil.
func Analyze(s *structure.Structure, c Constants, sink diag.Sink, prof *Profile) (Result, error) {
	if sink == nil {
		sink = diag.Nop{}
	}
	if s == nil {
		return Result{}, ErrMalformedStructure
	}

	type base struct {
		res    structure.Residue
		letter structure.BaseLetter
		frame  structure.Frame
		index  BaseIndex
	}

	var bases []base
	nextIndex := BaseIndex(1)
	for _, r := range s.Residues {
		letter, ok := structure.AssignLetter(r.Name, r.Atoms(s.Atoms))
		if !ok {
			sink.SkippedResidue("unrecognised residue", r.ID.Chain, r.ID.ResSeq)
			continue
		}
		if !structure.IsPairable(letter) {
			sink.SkippedResidue("not pairable", r.ID.Chain, r.ID.ResSeq)
			continue
		}
		frame := structure.BuildFrame(s.Atoms, r, letter)
		bases = append(bases, base{res: r, letter: letter, frame: frame, index: nextIndex})
		nextIndex++
	}

	if len(bases) == 0 {
		// §7/§8: zero recognised residues reaching the core is not fatal
		// here — the upstream layer should have rejected it first, but
		// the core still returns a well-defined empty result and reports
		// the condition rather than erroring.
		sink.MalformedStructure("no pairable residues")
		return Result{Stats: Stats{PairTypeCounts: map[string]int{}}}, nil
	}

	prof.setNumResidue(len(bases))

	frames := make([]structure.Frame, len(bases))
	for i, b := range bases {
		frames[i] = b.frame
	}

	candidates := candidatePairs(frames, c, prof)

	var verdicts []verdict
	seen := map[[2]int]bool{}
	for _, cand := range candidates {
		prof.addCheckPairsCall()
		bi, bj := bases[cand.I], bases[cand.J]
		v, ok := classifyPair(s.Atoms, bi.res, bj.res, bi.letter, bj.letter, bi.frame, bj.frame, cand.band, c, prof)
		if !ok {
			continue
		}
		v.I, v.J = cand.I, cand.J
		key := [2]int{v.I, v.J}
		if seen[key] {
			return Result{}, invariantViolation("duplicate candidate index pair", key)
		}
		seen[key] = true
		if v.Kind == KindUnknown {
			sink.AmbiguousPair(v.Note, cand.I, cand.J)
		}
		verdicts = append(verdicts, v)
	}

	reduced := reduce(verdicts, prof)

	records := make([]PairRecord, 0, len(reduced))
	for _, v := range reduced {
		bi, bj := bases[v.I], bases[v.J]
		records = append(records, PairRecord{
			I:           bi.index,
			J:           bj.index,
			ResI:        bi.res.ID,
			ResJ:        bj.res.ID,
			LetterI:     bi.letter,
			LetterJ:     bj.letter,
			Kind:        v.Kind,
			LW:          v.LW,
			Orientation: v.Orientation,
			SynI:        v.SynI,
			SynJ:        v.SynJ,
			Saenger:     v.Saenger,
			Note:        v.Note,
		})
	}

	multiplets := synthesizeMultiplets(records)
	stats := computeStats(len(bases), records)

	return Result{
		BasePairs:  records,
		Multiplets: multiplets,
		Stats:      stats,
	}, nil
}
