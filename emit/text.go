// Package emit renders a finalized pairing.Result as the two canonical
// output surfaces §6 defines: the line-based legacy-style text record
// and the structured JSON record.
package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/OOAAHH/RNAView/pairing"
	"github.com/OOAAHH/RNAView/structure"
)

// WriteText implements C11's text surface (§6.1): the three bracketed
// sections in fixed order, record lines in canonical (i,j) order,
// followed by the pair-count summary and, when any pair types were
// observed, the two-row statistics table.
//
// Grounded on original_source/rust/src/lib.rs's write_out_core: the
// section markers, per-kind record-line grammar and the trailing
// statistics table format are carried over unchanged; only the field
// values come from pairing.Result instead of a parsed legacy Core.
func WriteText(r pairing.Result) string {
	var b strings.Builder

	b.WriteString("BEGIN_base-pair\n")
	records := append([]pairing.PairRecord(nil), r.BasePairs...)
	sort.Slice(records, func(a, c int) bool {
		if records[a].I != records[c].I {
			return records[a].I < records[c].I
		}
		return records[a].J < records[c].J
	})
	for _, rec := range records {
		line := formatRecordLine(rec)
		if strings.TrimSpace(line) != "" {
			b.WriteString(strings.TrimRight(line, " \t"))
			b.WriteByte('\n')
		}
	}
	b.WriteString("END_base-pair\n\n")

	b.WriteString("Summary of triplets and higher multiplets\n")
	b.WriteString("BEGIN_multiplets\n")
	multiplets := append([]pairing.Multiplet(nil), r.Multiplets...)
	sort.Slice(multiplets, func(a, c int) bool {
		return multiplets[a].Indices[0] < multiplets[c].Indices[0]
	})
	for _, m := range multiplets {
		parts := make([]string, len(m.Indices))
		for i, idx := range m.Indices {
			parts[i] = strconv.Itoa(int(idx))
		}
		b.WriteString(strings.Join(parts, "_"))
		b.WriteString("_| ")
		b.WriteString(strings.TrimRight(m.Text, " \t"))
		b.WriteByte('\n')
	}
	b.WriteString("END_multiplets\n\n")

	b.WriteString(fmt.Sprintf("  The total base pairs = %3d (from %4d bases)\n", r.Stats.TotalPairs, r.Stats.TotalBases))
	if len(r.Stats.PairTypeCounts) > 0 {
		keys := make([]string, 0, len(r.Stats.PairTypeCounts))
		for k := range r.Stats.PairTypeCounts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		vals := make([]string, len(keys))
		for i, k := range keys {
			vals[i] = strconv.Itoa(r.Stats.PairTypeCounts[k])
		}
		b.WriteString("------------------------------------------------\n")
		b.WriteString(strings.Join(keys, " "))
		b.WriteByte('\n')
		b.WriteString(strings.Join(vals, " "))
		b.WriteByte('\n')
		b.WriteString("------------------------------------------------\n")
	}

	return b.String()
}

// formatRecordLine implements the record-line grammar of §6.1: field
// order is fixed, but kind=unknown collapses to the bare Note text and
// kind=stacked replaces the edge/orientation field with the literal
// "stacked".
func formatRecordLine(rec pairing.PairRecord) string {
	if rec.Kind == pairing.KindUnknown {
		return strings.TrimSpace(rec.Note)
	}

	head := fmt.Sprintf("%d_%d, %s:%s %s-%s %s:%s",
		rec.I, rec.J,
		rec.ResI.Chain, resseqIcode(rec.ResI),
		rec.LetterI.String(), rec.LetterJ.String(),
		resseqIcode(rec.ResJ), rec.ResJ.Chain,
	)

	var tokens []string
	if rec.Kind == pairing.KindStacked {
		if syn := synCount(rec); syn > 0 {
			for i := 0; i < syn; i++ {
				tokens = append(tokens, "syn")
			}
		}
		tokens = append(tokens, "stacked")
	} else {
		if rec.LW != "" {
			tokens = append(tokens, rec.LW)
		}
		if rec.Orientation != "" {
			tokens = append(tokens, rec.Orientation)
		}
		if syn := synCount(rec); syn > 0 {
			for i := 0; i < syn; i++ {
				tokens = append(tokens, "syn")
			}
		}
		if rec.Saenger != "" {
			tokens = append(tokens, rec.Saenger)
		}
		if strings.TrimSpace(rec.Note) != "" {
			tokens = append(tokens, rec.Note)
		}
	}

	rest := strings.Join(tokens, " ")
	return fmt.Sprintf("%s  %s", head, rest)
}

// resseqIcode renders the §6.1 "<resseq>_<icode>" form, dropping the
// icode suffix entirely when the residue carries none.
func resseqIcode(res structure.ResidueID) string {
	if res.ICode == 0 || res.ICode == ' ' {
		return strconv.Itoa(res.ResSeq)
	}
	return fmt.Sprintf("%d_%c", res.ResSeq, res.ICode)
}

func synCount(rec pairing.PairRecord) int {
	n := 0
	if rec.SynI {
		n++
	}
	if rec.SynJ {
		n++
	}
	return n
}
