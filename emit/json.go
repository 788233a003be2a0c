package emit

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/OOAAHH/RNAView/pairing"
	"github.com/OOAAHH/RNAView/pdbio"
	"github.com/OOAAHH/RNAView/structure"
)

// Record is the top-level schema v1 document (§6.2).
type Record struct {
	SchemaVersion int             `json:"schema_version"`
	Source        SourceInfo      `json:"source"`
	Options       json.RawMessage `json:"options"`
	Core          CoreRecord      `json:"core"`
}

// SourceInfo mirrors pdbio.Source, expanded to the field names §6.2
// names explicitly.
type SourceInfo struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	IDScheme string `json:"id_scheme"`
	Model    int    `json:"model"`
}

// CoreRecord is the finalized pair set, multiplets, and statistics.
type CoreRecord struct {
	BasePairs  []PairRecordJSON `json:"base_pairs"`
	Multiplets []MultipletJSON  `json:"multiplets"`
	Stats      StatsJSON        `json:"stats"`
}

// PairRecordJSON is the JSON projection of pairing.PairRecord: fields
// that only apply to kind=pair (lw, orientation, saenger) are omitted
// otherwise, matching original_source's Option<T> + skip_serializing_if
// fields.
type PairRecordJSON struct {
	I           int    `json:"i"`
	J           int    `json:"j"`
	ChainI      string `json:"chain_i"`
	ResseqI     int    `json:"resseq_i"`
	IcodeI      string `json:"icode_i,omitempty"`
	BaseI       string `json:"base_i"`
	BaseJ       string `json:"base_j"`
	ResseqJ     int    `json:"resseq_j"`
	ChainJ      string `json:"chain_j"`
	IcodeJ      string `json:"icode_j,omitempty"`
	Kind        string `json:"kind"`
	LW          string `json:"lw,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	SynI        bool   `json:"syn_i,omitempty"`
	SynJ        bool   `json:"syn_j,omitempty"`
	Note        string `json:"note,omitempty"`
	Saenger     string `json:"saenger,omitempty"`
}

// MultipletJSON is the JSON projection of pairing.Multiplet.
type MultipletJSON struct {
	Indices []int  `json:"indices"`
	Text    string `json:"text"`
}

// StatsJSON is the JSON projection of pairing.Stats, with pair type
// counts sorted lexicographically by key at marshal time.
type StatsJSON struct {
	TotalPairs     int            `json:"total_pairs"`
	TotalBases     int            `json:"total_bases"`
	PairTypeCounts map[string]int `json:"pair_type_counts"`
}

// BuildRecord assembles the schema v1 document from a finalized
// pairing.Result plus the upstream source/options context (§6.2).
func BuildRecord(src pdbio.Source, idScheme string, opts json.RawMessage, r pairing.Result) Record {
	basePairs := make([]PairRecordJSON, 0, len(r.BasePairs))
	sorted := append([]pairing.PairRecord(nil), r.BasePairs...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].I != sorted[b].I {
			return sorted[a].I < sorted[b].I
		}
		return sorted[a].J < sorted[b].J
	})
	for _, rec := range sorted {
		basePairs = append(basePairs, PairRecordJSON{
			I:           int(rec.I),
			J:           int(rec.J),
			ChainI:      rec.ResI.Chain,
			ResseqI:     rec.ResI.ResSeq,
			IcodeI:      icodeString(rec.ResI.ICode),
			BaseI:       rec.LetterI.String(),
			BaseJ:       rec.LetterJ.String(),
			ResseqJ:     rec.ResJ.ResSeq,
			ChainJ:      rec.ResJ.Chain,
			IcodeJ:      icodeString(rec.ResJ.ICode),
			Kind:        string(rec.Kind),
			LW:          rec.LW,
			Orientation: rec.Orientation,
			SynI:        rec.SynI,
			SynJ:        rec.SynJ,
			Note:        rec.Note,
			Saenger:     rec.Saenger,
		})
	}

	multiplets := make([]MultipletJSON, 0, len(r.Multiplets))
	sortedM := append([]pairing.Multiplet(nil), r.Multiplets...)
	sort.Slice(sortedM, func(a, b int) bool {
		return sortedM[a].Indices[0] < sortedM[b].Indices[0]
	})
	for _, m := range sortedM {
		indices := make([]int, len(m.Indices))
		for i, idx := range m.Indices {
			indices[i] = int(idx)
		}
		multiplets = append(multiplets, MultipletJSON{Indices: indices, Text: m.Text})
	}

	return Record{
		SchemaVersion: 1,
		Source: SourceInfo{
			Path:     src.Path,
			Format:   formatString(src.Format),
			IDScheme: idScheme,
			Model:    src.Model,
		},
		Options: opts,
		Core: CoreRecord{
			BasePairs:  basePairs,
			Multiplets: multiplets,
			Stats: StatsJSON{
				TotalPairs:     r.Stats.TotalPairs,
				TotalBases:     r.Stats.TotalBases,
				PairTypeCounts: r.Stats.PairTypeCounts,
			},
		},
	}
}

// ToResult reconstructs a pairing.Result from a schema v1 Record's core
// section, so a JSON record can be re-rendered as a text record (or
// vice versa) without recomputing the analysis.
func ToResult(rec Record) pairing.Result {
	basePairs := make([]pairing.PairRecord, 0, len(rec.Core.BasePairs))
	for _, p := range rec.Core.BasePairs {
		basePairs = append(basePairs, pairing.PairRecord{
			I:           pairing.BaseIndex(p.I),
			J:           pairing.BaseIndex(p.J),
			ResI:        structure.ResidueID{Chain: p.ChainI, ResSeq: p.ResseqI, ICode: icodeByte(p.IcodeI)},
			ResJ:        structure.ResidueID{Chain: p.ChainJ, ResSeq: p.ResseqJ, ICode: icodeByte(p.IcodeJ)},
			LetterI:     letterFromString(p.BaseI),
			LetterJ:     letterFromString(p.BaseJ),
			Kind:        pairing.Kind(p.Kind),
			LW:          p.LW,
			Orientation: p.Orientation,
			SynI:        p.SynI,
			SynJ:        p.SynJ,
			Saenger:     p.Saenger,
			Note:        p.Note,
		})
	}

	multiplets := make([]pairing.Multiplet, 0, len(rec.Core.Multiplets))
	for _, m := range rec.Core.Multiplets {
		indices := make([]pairing.BaseIndex, len(m.Indices))
		for i, idx := range m.Indices {
			indices[i] = pairing.BaseIndex(idx)
		}
		multiplets = append(multiplets, pairing.Multiplet{Indices: indices, Text: m.Text})
	}

	return pairing.Result{
		BasePairs:  basePairs,
		Multiplets: multiplets,
		Stats: pairing.Stats{
			TotalPairs:     rec.Core.Stats.TotalPairs,
			TotalBases:     rec.Core.Stats.TotalBases,
			PairTypeCounts: rec.Core.Stats.PairTypeCounts,
		},
	}
}

// letterFromString rebuilds a structure.BaseLetter from its rendered
// single-character form, preserving the canonical/modified case
// distinction (§4.1).
func letterFromString(s string) structure.BaseLetter {
	if s == "" {
		return structure.BaseLetter{}
	}
	ch := s[0]
	if ch >= 'a' && ch <= 'z' {
		return structure.Modified(ch)
	}
	return structure.Canonical(ch)
}

// icodeString renders a residue insertion code for the JSON surface,
// omitted (empty string, and thus the omitempty tag) when absent.
func icodeString(ic byte) string {
	if ic == 0 || ic == ' ' {
		return ""
	}
	return string(ic)
}

// icodeByte is icodeString's inverse.
func icodeByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

func formatString(f pdbio.Format) string {
	switch f {
	case pdbio.FormatCIF:
		return "cif"
	default:
		return "pdb"
	}
}

// MarshalDeterministic renders rec with every object's keys sorted
// lexicographically, fixed two-space indentation and no HTML escaping,
// matching §6.2's "keys sorted lexicographically, fixed separators"
// contract. encoding/json sorts map keys but emits struct fields in
// declaration order, so rec is first decoded into generic maps (numbers
// kept verbatim via UseNumber) and re-encoded from those. HTML escaping
// is disabled so the output is byte-stable across chain IDs containing
// '<', '>', or '&'.
func MarshalDeterministic(rec Record) ([]byte, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(generic); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
