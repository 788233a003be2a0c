package pdbio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OOAAHH/RNAView/structure"
)

// Format names the upstream file format, echoed back in the emitted
// record's source.format field (§6.2).
type Format string

const (
	FormatPDB Format = "pdb"
	FormatCIF Format = "cif"
)

// Source records the upstream file provenance the emitter's source block
// (§6.2) requires.
type Source struct {
	Path   string
	Format Format
	Model  int
}

// Parse dispatches on file extension (stripping a trailing ".gz"),
// parses the file, selects a model (NMR-aware for mmCIF, §6.3
// "nmr_model"), applies chain_filter and chain_id_truncate, and returns
// the finished Structure plus its Source metadata.
func Parse(path string, opts Options) (*structure.Structure, Source, error) {
	opts.resolve()
	format := sniffFormat(path)

	var s *structure.Structure
	var numModels int
	var nmrModel int

	switch format {
	case FormatPDB:
		parsed, n, err := ParsePDB(path)
		if err != nil {
			return nil, Source{}, fmt.Errorf("pdbio: %s: %w", path, err)
		}
		s, numModels = parsed, n
	case FormatCIF:
		f, err := os.Open(path)
		if err != nil {
			return nil, Source{}, err
		}
		defer f.Close()
		parsed, info, err := ParseMMCIF(f, opts)
		if err != nil {
			return nil, Source{}, fmt.Errorf("pdbio: %s: %w", path, err)
		}
		s, numModels, nmrModel = parsed, info.NumModels, info.NMRModel
	default:
		return nil, Source{}, fmt.Errorf("pdbio: %s: unrecognised file format", path)
	}

	minBases := opts.MinChainBases
	if minBases <= 0 {
		minBases = 2
	}
	s = dropUnpairableChains(s, minBases)

	model := resolveModel(opts.NMRModel, nmrModel, numModels)
	s = FilterModel(s, model)
	s = filterChains(s, opts)
	if opts.ChainIDTruncate {
		structure.TruncateChainIDs(s)
	}

	if len(s.Residues) == 0 {
		return nil, Source{}, fmt.Errorf("pdbio: %s: no residues survived parsing and filtering", path)
	}

	return s, Source{Path: path, Format: format, Model: model}, nil
}

func resolveModel(requested *int, nmrModel, numModels int) int {
	if requested != nil && *requested > 0 {
		return *requested
	}
	if nmrModel > 0 {
		return nmrModel
	}
	return 1
}

func filterChains(s *structure.Structure, opts Options) *structure.Structure {
	if len(opts.ChainFilter) == 0 {
		return s
	}
	var atoms []structure.Atom
	var residues []structure.Residue
	for _, r := range s.Residues {
		if !opts.Allows(r.ID.Chain) {
			continue
		}
		start := len(atoms)
		atoms = append(atoms, r.Atoms(s.Atoms)...)
		r.AtomStart, r.AtomEnd = start, len(atoms)
		residues = append(residues, r)
	}
	return &structure.Structure{Atoms: atoms, Residues: residues}
}

func sniffFormat(path string) Format {
	name := strings.TrimSuffix(filepath.Base(path), ".gz")
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cif", ".mmcif":
		return FormatCIF
	case ".pdb", ".ent":
		return FormatPDB
	}
	return ""
}
