package pdbio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/OOAAHH/RNAView/structure"
)

// ParsePDB reads a legacy fixed-column PDB file and returns a single
// structure.Structure holding the residues of every model present (each
// tagged with its model number in ResidueID.Model), plus the number of
// models seen, following the column layout of
// the ATOM/HETATM record (columns are 1-indexed in the format, 0-indexed
// here): record name 1-6, serial 7-11, atom name 13-16, altloc 17,
// resname 18-20, chain 22, resseq 23-26, icode 27, coords 31-54,
// occupancy 55-60, bfactor 61-66, element 77-78.
//
// Water (resname HOH/WAT/H2O/DOD) and any residue whose chain contributes
// only a single residue are dropped before the Structure is built,
// mirroring original_source's filtering of non-polymeric and
// singleton-chain content.
func ParsePDB(fileName string) (*structure.Structure, int, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var r io.Reader = f
	if path.Ext(fileName) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, 0, err
		}
		defer gz.Close()
		r = gz
	}
	return parsePDBReader(r)
}

type pdbBuilder struct {
	atoms     []structure.Atom
	residues  []structure.Residue
	curKey    string
	curStart  int
	numModels int
}

func parsePDBReader(r io.Reader) (*structure.Structure, int, error) {
	b := &pdbBuilder{numModels: 1}
	curModel := 1

	breader := bufio.NewReaderSize(r, 4096)
	for {
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, err
		}
		if len(line) < 6 {
			continue
		}

		switch strings.TrimSpace(string(line[0:6])) {
		case "MODEL":
			if n, err := strconv.Atoi(strings.TrimSpace(string(line[10:14]))); err == nil {
				curModel = n
				if n > b.numModels {
					b.numModels = n
				}
			}
		case "ATOM", "HETATM":
			if err := b.parseAtom(line, curModel); err != nil {
				return nil, 0, err
			}
		}
	}
	b.closeResidue()

	if len(b.atoms) == 0 {
		return nil, 0, fmt.Errorf("pdbio: no ATOM/HETATM records found")
	}
	return dropUnpairableChains(&structure.Structure{Atoms: b.atoms, Residues: b.residues}, 2), b.numModels, nil
}

func (b *pdbBuilder) parseAtom(line []byte, model int) error {
	if len(line) < 54 {
		return fmt.Errorf("pdbio: malformed ATOM/HETATM record (too short)")
	}
	name := strings.TrimSpace(string(line[12:16]))
	altloc := byte(' ')
	if len(line) > 16 {
		altloc = line[16]
	}
	resname := strings.TrimSpace(string(line[17:20]))
	chain := "_"
	if len(line) > 21 && line[21] != ' ' {
		chain = string(line[21])
	}

	resseq := 0
	if len(line) >= 26 {
		if n, err := strconv.Atoi(strings.TrimSpace(string(line[22:26]))); err == nil {
			resseq = n
		}
	}
	icode := byte(' ')
	if len(line) > 26 {
		icode = line[26]
	}

	var x, y, z float64
	if len(line) >= 54 {
		x, _ = strconv.ParseFloat(strings.TrimSpace(string(line[30:38])), 64)
		y, _ = strconv.ParseFloat(strings.TrimSpace(string(line[38:46])), 64)
		z, _ = strconv.ParseFloat(strings.TrimSpace(string(line[46:54])), 64)
	}
	var occ, bf float64 = 1, 0
	if len(line) >= 60 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(string(line[54:60])), 64); err == nil {
			occ = v
		}
	}
	if len(line) >= 66 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(string(line[60:66])), 64); err == nil {
			bf = v
		}
	}
	element := ""
	if len(line) >= 78 {
		element = strings.TrimSpace(string(line[76:78]))
	}

	if altloc != ' ' && altloc != 'A' {
		// Collapse alternate locations upstream of the core: only the
		// first-presented conformer survives, per §3's assumption that
		// altlocs have already been resolved.
		return nil
	}
	if isWater(resname) {
		return nil
	}

	key := fmt.Sprintf("%d/%s/%d/%c/%s", model, chain, resseq, icode, resname)
	if key != b.curKey {
		b.closeResidue()
		b.curKey = key
		b.curStart = len(b.atoms)
		b.residues = append(b.residues, structure.Residue{
			ID: structure.ResidueID{
				Chain:  chain,
				ResSeq: resseq,
				ICode:  icode,
				Model:  model,
			},
			Name:      resname,
			AtomStart: b.curStart,
		})
	}

	b.atoms = append(b.atoms, structure.Atom{
		Name:      name,
		Element:   element,
		X:         x,
		Y:         y,
		Z:         z,
		AltLoc:    altloc,
		Occupancy: occ,
		BFactor:   bf,
	})
	return nil
}

func (b *pdbBuilder) closeResidue() {
	if len(b.residues) == 0 {
		return
	}
	b.residues[len(b.residues)-1].AtomEnd = len(b.atoms)
}

func isWater(resname string) bool {
	switch resname {
	case "HOH", "WAT", "H2O", "DOD":
		return true
	}
	return false
}

// dropUnpairableChains removes residues belonging to a chain that
// contributes fewer than minBases residues in that model: such chains
// (free ions, single-nucleotide crystallization additives) can never
// participate in a pair, per original_source's structure-construction
// filter. minBases is Options.MinChainBases (§6.3); a caller passing 0
// gets no filtering at all, so Parse always resolves it to the default
// of 2 first.
func dropUnpairableChains(s *structure.Structure, minBases int) *structure.Structure {
	counts := make(map[string]int)
	for _, r := range s.Residues {
		counts[fmt.Sprintf("%d/%s", r.ID.Model, r.ID.Chain)]++
	}

	var atoms []structure.Atom
	var residues []structure.Residue
	for _, r := range s.Residues {
		if counts[fmt.Sprintf("%d/%s", r.ID.Model, r.ID.Chain)] < minBases {
			continue
		}
		start := len(atoms)
		atoms = append(atoms, r.Atoms(s.Atoms)...)
		r.AtomStart, r.AtomEnd = start, len(atoms)
		residues = append(residues, r)
	}
	return &structure.Structure{Atoms: atoms, Residues: residues}
}
