package pdbio

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/cif"

	"github.com/OOAAHH/RNAView/structure"
)

// ModelInfo carries the per-file model bookkeeping a parser recovers
// alongside the flattened Structure: how many models are present, and
// (for mmCIF NMR ensembles) which model SelectNMRModel chose as
// representative, or 0 if the entry is not an NMR ensemble.
type ModelInfo struct {
	NumModels int
	NMRModel  int
}

// ParseMMCIF reads exactly one PDBx/mmCIF data block and returns the
// resulting Structure (all models present; callers select one with
// FilterModel).
//
// Adapted from TuftsBCB's pdbx.Read/readAtomSites loop-tag-access
// pattern, generalized from protein atom_site tags to the nucleic-acid
// case and parameterized on the cif_ids option (auth vs label schemes).
func ParseMMCIF(r io.Reader, opts Options) (*structure.Structure, ModelInfo, error) {
	cf, err := cif.Read(r)
	if err != nil {
		return nil, ModelInfo{}, err
	}
	if len(cf.Blocks) == 0 {
		return nil, ModelInfo{}, fmt.Errorf("pdbio: mmCIF file contains no data blocks")
	}
	names := make([]string, 0, len(cf.Blocks))
	for name := range cf.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return readBlock(cf.Blocks[names[0]], opts)
}

func readBlock(b *cif.DataBlock, opts Options) (*structure.Structure, ModelInfo, error) {
	chainTag, seqTag := "atom_site.auth_asym_id", "atom_site.auth_seq_id"
	if opts.CIFIds == CIFIdLabel {
		chainTag, seqTag = "atom_site.label_asym_id", "atom_site.label_seq_id"
	}

	loop := asLoop(b, "atom_site.group_pdb", "atom_site.label_atom_id",
		chainTag, seqTag, "atom_site.label_comp_id",
		"atom_site.cartn_x", "atom_site.cartn_y", "atom_site.cartn_z",
		"atom_site.pdbx_pdb_model_num", "atom_site.pdbx_pdb_ins_code",
		"atom_site.label_alt_id", "atom_site.type_symbol",
		"atom_site.occupancy", "atom_site.b_iso_or_equiv")

	groups, names := loop[0].Strings(), loop[1].Strings()
	chains, seqids := loop[2].Strings(), loop[3].Ints()
	comps := loop[4].Strings()
	xs, ys, zs := loop[5].Floats(), loop[6].Floats(), loop[7].Floats()
	models := loop[8].Ints()
	icodes := loop[9].Strings()
	altlocs := loop[10].Strings()
	elements := loop[11].Strings()
	occs, bfacts := loop[12].Floats(), loop[13].Floats()

	if groups == nil || names == nil || chains == nil || seqids == nil ||
		comps == nil || xs == nil || ys == nil || zs == nil {
		return nil, ModelInfo{}, fmt.Errorf("pdbio: mmCIF file has no usable atom_site records")
	}

	var s structure.Structure
	var curKey string
	numModels := 1

	for i := range groups {
		model := 1
		if models != nil && models[i] != 0 {
			model = models[i]
		}
		if model > numModels {
			numModels = model
		}

		resname := comps[i]
		if isWater(resname) {
			continue
		}
		alt := byte(' ')
		if altlocs != nil && len(altlocs[i]) > 0 && altlocs[i] != "." && altlocs[i] != "?" {
			alt = altlocs[i][0]
		}
		if alt != ' ' && alt != 'A' {
			continue
		}

		chain := chains[i]
		seqNum := seqids[i]
		icode := byte(' ')
		if icodes != nil && len(icodes[i]) > 0 && icodes[i] != "?" && icodes[i] != "." {
			icode = icodes[i][0]
		}

		key := fmt.Sprintf("%d/%s/%d/%c/%s", model, chain, seqNum, icode, resname)
		if key != curKey {
			if len(s.Residues) > 0 {
				s.Residues[len(s.Residues)-1].AtomEnd = len(s.Atoms)
			}
			curKey = key
			s.Residues = append(s.Residues, structure.Residue{
				ID: structure.ResidueID{
					Chain:  chain,
					ResSeq: seqNum,
					ICode:  icode,
					Model:  model,
				},
				Name:      resname,
				AtomStart: len(s.Atoms),
			})
		}

		elem := ""
		if elements != nil {
			elem = elements[i]
		}
		occ, bf := 1.0, 0.0
		if occs != nil {
			occ = occs[i]
		}
		if bfacts != nil {
			bf = bfacts[i]
		}
		s.Atoms = append(s.Atoms, structure.Atom{
			Name:      strings.Trim(names[i], "\""),
			Element:   elem,
			X:         xs[i],
			Y:         ys[i],
			Z:         zs[i],
			AltLoc:    alt,
			Occupancy: occ,
			BFactor:   bf,
		})
	}
	if len(s.Residues) > 0 {
		s.Residues[len(s.Residues)-1].AtomEnd = len(s.Atoms)
	}

	nmrModel := SelectNMRModel(b)
	if nmrModel > numModels {
		nmrModel = 0
	}
	return dropUnpairableChains(&s, 2), ModelInfo{NumModels: numModels, NMRModel: nmrModel}, nil
}

func parseSeq(s string) int {
	n := 0
	neg := false
	for i, ch := range s {
		if i == 0 && ch == '-' {
			neg = true
			continue
		}
		if ch < '0' || ch > '9' {
			return n
		}
		n = n*10 + int(ch-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// SelectNMRModel implements the NMR representative-model selection
// heuristic: if _exptl.method names NMR, prefer
// _pdbx_nmr_representative.conformer_id, then
// _pdbx_nmr_ensemble.representative_conformer, defaulting to model 1.
// Returns 0 when the entry is not an NMR structure at all, grounded on
// original_source's mmcif_best_model_if_nmr.
func SelectNMRModel(b *cif.DataBlock) int {
	method := value(b, "exptl.method").String()
	if !strings.Contains(strings.ToUpper(method), "NMR") {
		return 0
	}
	if v := value(b, "pdbx_nmr_representative.conformer_id").String(); pickable(v) {
		return parseSeq(v)
	}
	if v := value(b, "pdbx_nmr_ensemble.representative_conformer").String(); pickable(v) {
		return parseSeq(v)
	}
	return 1
}

func pickable(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "?" && v != "."
}

func value(b *cif.DataBlock, key string) cif.Value {
	if v, ok := b.Items[key]; ok {
		return v
	}
	return cif.AsValue("")
}

// asLoop mirrors TuftsBCB's pdbx.asLoop: it abstracts over whether a
// data category happens to be declared as a loop (multiple rows) or as a
// set of bare key/value items (a single implicit row).
func asLoop(b *cif.DataBlock, key string, others ...string) []cif.ValueLoop {
	tags := append([]string{key}, others...)
	asColumns := func(loop *cif.Loop) []cif.ValueLoop {
		vloop := make([]cif.ValueLoop, len(tags))
		for i, tag := range tags {
			vloop[i] = loop.Get(tag)
		}
		return vloop
	}

	if loop, ok := b.Loops[key]; ok {
		return asColumns(loop)
	}
	loop := &cif.Loop{
		Columns: make(map[string]int, len(tags)),
		Values:  make([]cif.ValueLoop, len(tags)),
	}
	for i, tag := range tags {
		loop.Columns[tag] = i
		switch v := value(b, tag).Raw().(type) {
		case string:
			loop.Values[i] = cif.AsValues([]string{v})
		case int:
			loop.Values[i] = cif.AsValues([]int{v})
		case float64:
			loop.Values[i] = cif.AsValues([]float64{v})
		default:
			loop.Values[i] = cif.AsValues([]string{""})
		}
	}
	return asColumns(loop)
}
