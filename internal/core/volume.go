package core

// Sphere is a bounding sphere used for the craft and collectibles.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Box is an axis-aligned bounding box used for gate bodies.
type Box struct {
	Min, Max Vec3
}

// NewBox builds a box from a center point and full extents per axis.
func NewBox(center Vec3, w, h, d float64) Box {
	half := Vec3{w / 2, h / 2, d / 2}
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// IntersectsSphere reports whether s overlaps o.
func (s Sphere) IntersectsSphere(o Sphere) bool {
	sum := s.Radius + o.Radius
	return s.Center.Sub(o.Center).Dot(s.Center.Sub(o.Center)) <= sum*sum
}

// IntersectsBox reports whether the sphere overlaps the box.
// Standard closest-point test: clamp the sphere center to the box and
// compare the residual distance against the radius.
func (s Sphere) IntersectsBox(b Box) bool {
	cx := ClampF(s.Center.X, b.Min.X, b.Max.X)
	cy := ClampF(s.Center.Y, b.Min.Y, b.Max.Y)
	cz := ClampF(s.Center.Z, b.Min.Z, b.Max.Z)
	d := s.Center.Sub(Vec3{cx, cy, cz})
	return d.Dot(d) <= s.Radius*s.Radius
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
