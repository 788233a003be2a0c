package structure

import (
	"math"

	matrix "github.com/skelterjohn/go.matrix"
)

// Frame is the per-residue reference frame used throughout the pairing
// engine: an origin, a unit normal to the base plane, and a unit
// long-axis roughly tracking the glycosidic bond direction. Valid is
// false when fewer than three template atoms were present and the fit
// could not be performed (§4.2); CentroidOnly is set when only the atom
// centroid fallback (for stacking) was computed.
type Frame struct {
	Origin       Vec3
	Normal       Vec3
	LongAxis     Vec3
	Valid        bool
	CentroidOnly bool
}

// template is an idealized planar ring geometry used as the fit target
// for a base letter. Coordinates are an idealized planar hexagon (and,
// for purines, fused pentagon) with standard aromatic bond lengths; they
// are not derived from any specific PDB entry, only from the ring
// connectivity itself, since the fit only needs self-consistent in-plane
// geometry to recover origin/normal/long-axis under a rigid rotation.
type template struct {
	atomOrder []string
	coords    []Vec3
	longAxis  [2]string // atom names defining the template long axis direction
}

func hexRing(bond float64) []Vec3 {
	// Six points on a regular hexagon of "radius" bond, in the XY plane,
	// vertex 0 at angle 90 degrees (so N1 sits at the "top").
	pts := make([]Vec3, 6)
	for i := 0; i < 6; i++ {
		a := math.Pi/2 + float64(i)*math.Pi/3
		pts[i] = Vec3{bond * math.Cos(a), bond * math.Sin(a), 0}
	}
	return pts
}

// purineTemplate fuses a five-membered imidazole ring onto the C4-C5
// edge of the hexagon, matching the N1,C2,N3,C4,C5,C6,N7,C8,N9 atom
// order.
func purineTemplate() template {
	hex := hexRing(1.38)
	// hex order corresponds to N1,C2,N3,C4,C5,C6 by construction above.
	c4, c5 := hex[3], hex[4]
	mid := c4.Add(c5).Scale(0.5)
	out := mid.Sub(Vec3{0, 0, 0}).Unit()
	n7 := c5.Add(out.Scale(1.3))
	c8 := mid.Add(out.Scale(2.1))
	n9 := c4.Add(out.Scale(1.3))
	return template{
		atomOrder: purineRing,
		coords:    []Vec3{hex[0], hex[1], hex[2], c4, c5, hex[5], n7, c8, n9},
		longAxis:  [2]string{"N1", "N9"},
	}
}

func pyrimidineTemplate() template {
	hex := hexRing(1.35)
	return template{
		atomOrder: pyrimidineRing,
		coords:    hex,
		longAxis:  [2]string{"N1", "C4"},
	}
}

var (
	tmplPurine     = purineTemplate()
	tmplPyrimidine = pyrimidineTemplate()
)

func templateFor(l BaseLetter) template {
	switch l.Canon() {
	case 'A', 'G', 'I':
		return tmplPurine
	default:
		return tmplPyrimidine
	}
}

// BuildFrame implements §4.2: a least-squares (Kabsch) superposition of
// the residue's ring atoms onto the idealized template for its letter.
// The fit fails (Valid=false) when fewer than three template atoms are
// present, in which case a centroid-only fallback frame is returned for
// use by the stacking detector alone, per §4.2's final sentence.
func BuildFrame(all []Atom, r Residue, letter BaseLetter) Frame {
	tmpl := templateFor(letter)

	var obs, ref []Vec3
	for i, name := range tmpl.atomOrder {
		if a, ok := r.AtomByName(all, name); ok {
			obs = append(obs, a.Vec())
			ref = append(ref, tmpl.coords[i])
		}
	}
	if len(obs) < 3 {
		return centroidFallback(all, r)
	}

	origin, normal, longAxis := kabschFrame(obs, ref, tmpl, r, all)
	return Frame{Origin: origin, Normal: normal, LongAxis: longAxis, Valid: true}
}

func centroidFallback(all []Atom, r Residue) Frame {
	atoms := r.Atoms(all)
	if len(atoms) == 0 {
		return Frame{}
	}
	var sum Vec3
	for _, a := range atoms {
		sum = sum.Add(a.Vec())
	}
	centroid := sum.Scale(1 / float64(len(atoms)))

	// Normal from the best-fit plane of up to the first three atoms;
	// degenerate inputs yield the zero vector, which callers must treat
	// as "no usable plane".
	var normal Vec3
	if len(atoms) >= 3 {
		v1 := atoms[1].Vec().Sub(atoms[0].Vec())
		v2 := atoms[2].Vec().Sub(atoms[0].Vec())
		normal = v1.Cross(v2).Unit()
	}
	return Frame{Origin: centroid, Normal: normal, CentroidOnly: true}
}

// kabschFrame fits obs (observed ring atom coordinates) onto ref
// (idealized template coordinates) via SVD, then carries the template
// origin (the ring centroid, (0,0,0) in template space), normal ((0,0,1)
// in template space) and long axis through the resulting rotation.
func kabschFrame(obs, ref []Vec3, tmpl template, r Residue, all []Atom) (Vec3, Vec3, Vec3) {
	n := len(obs)

	var obsC, refC Vec3
	for i := 0; i < n; i++ {
		obsC = obsC.Add(obs[i])
		refC = refC.Add(ref[i])
	}
	obsC = obsC.Scale(1 / float64(n))
	refC = refC.Scale(1 / float64(n))

	// Build the 3xN matrices of centered coordinates; X is the moving
	// (template/reference) set, Y is the fixed (observed) set, following
	// the same convention as the teacher's Kabsch implementation.
	elsX := make([]float64, 3*n)
	elsY := make([]float64, 3*n)
	for i := 0; i < n; i++ {
		rx := ref[i].Sub(refC)
		oy := obs[i].Sub(obsC)
		elsX[i+0*n] = rx.X
		elsX[i+1*n] = rx.Y
		elsX[i+2*n] = rx.Z
		elsY[i+0*n] = oy.X
		elsY[i+1*n] = oy.Y
		elsY[i+2*n] = oy.Z
	}
	X := matrix.MakeDenseMatrix(elsX, 3, n)
	Y := matrix.MakeDenseMatrix(elsY, 3, n)

	C, err := X.TimesDense(Y.Transpose())
	if err != nil {
		return centroidFallbackVecs(obs)
	}
	V, _, WT, err := C.SVD()
	if err != nil {
		return centroidFallbackVecs(obs)
	}

	VT := V.Transpose()
	var U *matrix.DenseMatrix
	if C.Det() < 0 {
		adjust := matrix.MakeDenseMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, -1}, 3, 3)
		Wadj, err := WT.TimesDense(adjust)
		if err != nil {
			return centroidFallbackVecs(obs)
		}
		U, err = Wadj.TimesDense(VT)
		if err != nil {
			return centroidFallbackVecs(obs)
		}
	} else {
		U, err = WT.TimesDense(VT)
		if err != nil {
			return centroidFallbackVecs(obs)
		}
	}

	rotate := func(v Vec3) Vec3 {
		col := matrix.MakeDenseMatrix([]float64{v.X, v.Y, v.Z}, 3, 1)
		rotated, err := U.TimesDense(col)
		if err != nil {
			return Vec3{}
		}
		return Vec3{rotated.Get(0, 0), rotated.Get(1, 0), rotated.Get(2, 0)}
	}

	// Template origin is (0,0,0) (the ring centroid, since the template
	// coordinates are constructed centered there); template normal is
	// the ring-plane normal (0,0,1) by construction.
	origin := obsC.Add(rotate(Vec3{0, 0, 0}.Sub(refC)))
	normal := rotate(Vec3{0, 0, 1}).Unit()

	var longAxis Vec3
	from, fromOK := templateCoord(tmpl, tmpl.longAxis[0])
	to, toOK := templateCoord(tmpl, tmpl.longAxis[1])
	if fromOK && toOK {
		longAxis = rotate(to.Sub(from)).Unit()
	}
	return origin, normal, longAxis
}

func templateCoord(tmpl template, name string) (Vec3, bool) {
	for i, n := range tmpl.atomOrder {
		if n == name {
			return tmpl.coords[i], true
		}
	}
	return Vec3{}, false
}

func centroidFallbackVecs(obs []Vec3) (Vec3, Vec3, Vec3) {
	var sum Vec3
	for _, v := range obs {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(obs))), Vec3{}, Vec3{}
}

// Chi computes the glycosidic torsion χ = O4'-C1'-N9/N1-C4/C2 used by
// §4.5 step 4's syn determination. ok is false if any required atom is
// missing.
func Chi(all []Atom, r Residue, letter BaseLetter) (chi float64, ok bool) {
	o4, ok1 := r.AtomByName(all, "O4'")
	c1, ok2 := r.AtomByName(all, "C1'")
	if !ok1 || !ok2 {
		return 0, false
	}
	var nAtom, refAtom string
	if letter.Canon() == 'A' || letter.Canon() == 'G' || letter.Canon() == 'I' {
		nAtom, refAtom = "N9", "C4"
	} else {
		nAtom, refAtom = "N1", "C2"
	}
	n, ok3 := r.AtomByName(all, nAtom)
	ref, ok4 := r.AtomByName(all, refAtom)
	if !ok3 || !ok4 {
		return 0, false
	}
	return Degrees(Dihedral(o4.Vec(), c1.Vec(), n.Vec(), ref.Vec())), true
}

// IsSyn reports whether a glycosidic torsion falls in the syn range
// (−90°, +90°), per §4.5 step 4 and the glossary.
func IsSyn(chiDegrees float64) bool {
	return chiDegrees > -90 && chiDegrees < 90
}
