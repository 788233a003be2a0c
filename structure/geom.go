package structure

import "math"

// Vec3 is a three dimensional vector. It is used both for atom
// coordinates and for the derived frame axes.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Unit returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

func Distance(a, b Vec3) float64 { return a.Sub(b).Norm() }

// AngleBetween returns the unsigned angle, in radians, between two
// vectors, via acos of the dot product of their unit forms.
func AngleBetween(a, b Vec3) float64 {
	au, bu := a.Unit(), b.Unit()
	c := au.Dot(bu)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Dihedral returns the signed dihedral angle (in radians) defined by four
// points p0-p1-p2-p3, following the standard atan2-of-cross-products
// formulation used for torsion angles such as the glycosidic χ.
func Dihedral(p0, p1, p2, p3 Vec3) float64 {
	b0 := p0.Sub(p1)
	b1 := p2.Sub(p1)
	b2 := p3.Sub(p2)

	b1u := b1.Unit()
	v := b0.Sub(b1u.Scale(b0.Dot(b1u)))
	w := b2.Sub(b1u.Scale(b2.Dot(b1u)))

	x := v.Dot(w)
	y := b1u.Cross(v).Dot(w)
	return math.Atan2(y, x)
}

// PlaneOffset returns the signed perpendicular distance from point p to
// the plane through origin with unit normal n.
func PlaneOffset(p, origin, normal Vec3) float64 {
	return p.Sub(origin).Dot(normal)
}

// Degrees converts an angle in radians to degrees, the unit every
// Constants angle threshold is expressed in (§4.3, §4.4).
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
