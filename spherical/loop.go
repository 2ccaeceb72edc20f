package spherical

import (
	"math"

	nv "github.com/ChristopherRabotin/nvector"
)

// boundMargin absorbs the round-off of n-vector to latitude/longitude conversions in Loop.Bound:
// 1e-7 degrees is about 11 millimetres at the equator.
var boundMargin = nv.AngleFromDegrees(1e-7)

type classification uint8

const (
	convex classification = iota
	reflex
	collinear // both convex and reflex
)

func classify(side int) classification {
	switch {
	case side > 0:
		return reflex
	case side < 0:
		return convex
	default:
		return collinear
	}
}

type vertex struct {
	p     nv.NVector
	class classification
}

// Triangle is three positions of the sphere.
type Triangle [3]nv.NVector

// Loop is a closed chain of at least three positions delimiting a region of the sphere. Vertices
// are stored in clockwise order regardless of the order given at construction and consecutive
// vertices are joined by minor arcs. A loop is immutable.
type Loop struct {
	vertices   []vertex
	edges      []MinorArc
	insides    [2]nv.NVector // two positions inside the loop
	hasInsides bool
}

// EmptyLoop is the loop with no vertices.
var EmptyLoop = Loop{}

// NewLoop returns the loop of the given positions, in clockwise or anti-clockwise order. The first
// position may be repeated at the end. The loop is empty if fewer than three positions are given or
// if all positions are on the same great circle.
func NewLoop(vs []nv.NVector) Loop {
	o := opened(vs)
	if len(o) < 3 {
		return EmptyLoop
	}
	edges, clockwise := toEdges(o)
	if !clockwise {
		edges = reverseEdges(edges)
	}
	vertices := clockwiseEdgesToVertices(edges)
	allCollinear := true
	for _, v := range vertices {
		if v.class != collinear {
			allCollinear = false
			break
		}
	}
	if allCollinear {
		return EmptyLoop
	}
	l := Loop{vertices: vertices, edges: edges}
	if len(o) > 3 {
		l.insides, l.hasInsides = findInsides(vertices)
	}
	return l
}

// IsLoopClockwise returns whether the given positions are in clockwise order.
func IsLoopClockwise(vs []nv.NVector) bool {
	o := opened(vs)
	n := len(o)
	switch {
	case n < 3:
		return false
	case n == 3:
		return Side(o[0], o[1], o[2]) < 0
	}
	var turn nv.Angle
	for i := range o {
		turn += Turn(o[(i+n-1)%n], o[i], o[(i+1)%n])
	}
	return turn < 0
}

// IsEmpty returns whether this loop has no vertices.
func (l Loop) IsEmpty() bool { return len(l.vertices) == 0 }

// NumVertices returns the number of vertices of this loop.
func (l Loop) NumVertices() int { return len(l.vertices) }

// Vertex returns the i-th vertex of this loop, in clockwise order.
func (l Loop) Vertex(i int) nv.NVector { return l.vertices[i].p }

// Vertices returns all vertices of this loop in clockwise order.
func (l Loop) Vertices() []nv.NVector {
	vs := make([]nv.NVector, len(l.vertices))
	for i, v := range l.vertices {
		vs[i] = v.p
	}
	return vs
}

// Edges returns the minor arcs joining consecutive vertices of this loop.
func (l Loop) Edges() []MinorArc {
	return append([]MinorArc(nil), l.edges...)
}

// HasVertex returns whether p is a vertex of this loop.
func (l Loop) HasVertex(p nv.NVector) bool {
	for _, v := range l.vertices {
		if v.p == p {
			return true
		}
	}
	return false
}

// AnyEdgeContainsPoint returns whether p is on any edge of this loop.
func (l Loop) AnyEdgeContainsPoint(p nv.NVector) bool {
	for _, e := range l.edges {
		if e.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// IsConvex returns whether all vertices of this loop which are not collinear with their neighbours
// turn the same way. The empty loop is not convex.
func (l Loop) IsConvex() bool {
	n := len(l.vertices)
	switch {
	case n < 3:
		return false
	case n == 3:
		return true
	}
	side := 0
	for i := range l.vertices {
		s := Side(l.vertices[(i+n-1)%n].p, l.vertices[i].p, l.vertices[(i+1)%n].p)
		if s == 0 {
			continue
		}
		if side != 0 && s != side {
			return false
		}
		side = s
	}
	return true
}

// IsSimple returns whether consecutive vertices of this loop are neither equal nor antipodal and no
// two non-adjacent edges intersect.
func (l Loop) IsSimple() bool {
	n := len(l.vertices)
	for i := range l.vertices {
		if !IsGreatCircle(l.vertices[i].p, l.vertices[(i+1)%n].p) {
			return false
		}
	}
	ne := len(l.edges)
	if ne <= 3 {
		return true
	}
	for i := 0; i < ne-1; i++ {
		last := ne
		if i == 0 {
			// first and last edges are adjacent.
			last = ne - 1
		}
		for j := i + 2; j < last; j++ {
			if _, ok := l.edges[i].Intersection(l.edges[j]); ok {
				return false
			}
		}
	}
	return true
}

// ContainsPoint returns whether p is strictly inside this loop: positions on an edge or vertices
// are not contained.
func (l Loop) ContainsPoint(p nv.NVector) bool {
	if l.HasVertex(p) || l.AnyEdgeContainsPoint(p) {
		return false
	}
	if l.hasInsides {
		return l.containsPointFromInsides(p)
	}
	if len(l.vertices) != 3 {
		return false
	}
	// vertices are clockwise: negate the dot product.
	s1 := -p.Dot(l.edges[0].normal)
	s2 := -p.Dot(l.edges[1].normal)
	s3 := -p.Dot(l.edges[2].normal)
	return s1 > 0 && s2 > 0 && s3 > 0
}

// containsPointFromInsides counts the crossings of the minor arc from a position inside this loop to p.
func (l Loop) containsPointFromInsides(p nv.NVector) bool {
	a, b := l.insides[0], l.insides[1]
	if p == a || p == b {
		return true
	}
	start := a
	if a.IsAntipodeOf(p) {
		start = b
	}
	ma := NewMinorArc(start, p)
	// a crossing on a vertex is found on both edges sharing that vertex: the last edge shares its
	// end with the start of the first one.
	count := 0
	var first, prev nv.Vec3
	last := len(l.edges) - 1
	for i, e := range l.edges {
		iv, ok := ma.Intersection(e)
		if !ok {
			prev = nv.ZeroVec3
			continue
		}
		switch i {
		case 0:
			count++
			first = iv.Vec3
			prev = iv.Vec3
		case last:
			if !iv.Equal(first) && !iv.Equal(prev) {
				count++
			}
		default:
			if !iv.Equal(prev) {
				count++
			}
			prev = iv.Vec3
		}
	}
	// the start is inside.
	return count%2 == 0
}

// Triangulate returns the triangles of this loop computed by ear clipping: n - 2 triangles for a
// simple loop of n vertices. Nothing is returned if this loop is empty or not simple.
func (l Loop) Triangulate() []Triangle {
	switch len(l.vertices) {
	case 0:
		return nil
	case 3:
		return []Triangle{{l.vertices[0].p, l.vertices[1].p, l.vertices[2].p}}
	}
	remaining := append([]vertex(nil), l.vertices...)
	res := make([]Triangle, 0, len(remaining)-2)
	for len(remaining) > 3 {
		ear, ok := nextEar(&remaining)
		if !ok {
			// more than 3 vertices remain but no ear: the loop is not simple.
			return nil
		}
		res = append(res, ear)
	}
	return append(res, Triangle{remaining[0].p, remaining[1].p, remaining[2].p})
}

// Bound returns the smallest rectangle containing this loop.
func (l Loop) Bound() Rectangle {
	rs := make([]Rectangle, len(l.edges))
	for i, e := range l.edges {
		rs[i] = RectangleFromMinorArc(e)
	}
	mbr := RectangleFromUnion(rs).Expand(boundMargin).PolarClosure()
	if l.ContainsPoint(nv.NVector{Vec3: nv.UnitZ}) {
		mbr = mbr.ExpandToNorthPole()
	}
	// a loop containing the south pole either wraps around all meridians or also contains the
	// north pole.
	if mbr.IsLongitudeFull() && l.ContainsPoint(nv.NVector{Vec3: nv.NegUnitZ}) {
		mbr = mbr.ExpandToSouthPole()
	}
	return mbr
}

// SphericalExcess returns the spherical excess of this loop: its area on the unit sphere.
func (l Loop) SphericalExcess() nv.Angle {
	if l.IsEmpty() {
		return 0
	}
	n := len(l.edges)
	// the angle between two edges is π ± a, a being the angle between their normals signed
	// about their shared vertex.
	var sum float64
	for i, e := range l.edges {
		sum += AngleRadiansBetween(e.normal, l.edges[(i+1)%n].normal, &e.end.Vec3)
	}
	fn := float64(n)
	interior := fn*math.Pi - math.Abs(sum)
	return nv.AngleFromRadians(interior - (fn-2)*math.Pi)
}

// Area returns the surface of this loop on the given sphere, in square metres.
func (l Loop) Area(s Sphere) float64 {
	r := s.Radius.Metres()
	return l.SphericalExcess().Radians() * r * r
}

func opened(vs []nv.NVector) []nv.NVector {
	if n := len(vs); n > 1 && vs[0] == vs[n-1] {
		return vs[:n-1]
	}
	return vs
}

// toEdges returns the minor arcs joining the given positions and whether they are in clockwise order
// (the total turn is negative).
func toEdges(vs []nv.NVector) ([]MinorArc, bool) {
	n := len(vs)
	edges := make([]MinorArc, n)
	var turn nv.Angle
	for i := range vs {
		edges[i] = NewMinorArc(vs[i], vs[(i+1)%n])
		if i > 0 {
			turn += edges[i-1].Turn(edges[i])
		}
	}
	turn += edges[n-1].Turn(edges[0])
	return edges, turn < 0
}

func reverseEdges(es []MinorArc) []MinorArc {
	n := len(es)
	res := make([]MinorArc, 0, n)
	for i := n - 2; i >= 0; i-- {
		res = append(res, es[i].Opposite())
	}
	return append(res, es[n-1].Opposite())
}

func clockwiseEdgesToVertices(es []MinorArc) []vertex {
	n := len(es)
	res := make([]vertex, n)
	for i, cur := range es {
		prev := es[(i+n-1)%n]
		res[i] = vertex{cur.start, classify(cur.SideOf(prev.start))}
	}
	return res
}

// findInsides returns the mean positions of the first two ears of the given vertices.
func findInsides(vs []vertex) ([2]nv.NVector, bool) {
	remaining := append([]vertex(nil), vs...)
	var res []nv.NVector
	for len(res) < 2 {
		if len(remaining) == 3 {
			if p, ok := TriangleMeanPosition(remaining[0].p, remaining[1].p, remaining[2].p); ok {
				res = append(res, p)
			}
			break
		}
		ear, ok := nextEar(&remaining)
		if !ok {
			break
		}
		if p, ok := TriangleMeanPosition(ear[0], ear[1], ear[2]); ok {
			res = append(res, p)
		}
	}
	if len(res) != 2 {
		return [2]nv.NVector{}, false
	}
	return [2]nv.NVector{res[0], res[1]}, true
}

// nextEar removes the first ear from remaining and returns it, if any. An ear is a convex vertex
// whose triangle with its neighbours contains no other non-convex vertex.
func nextEar(remaining *[]vertex) (Triangle, bool) {
	vs := *remaining
	n := len(vs)
	for i, cur := range vs {
		if cur.class != convex {
			continue
		}
		prev := vs[(i+n-1)%n].p
		next := vs[(i+1)%n].p
		if !allOutside(prev, cur.p, next, vs) {
			continue
		}
		vs = append(vs[:i], vs[i+1:]...)
		if len(vs) > 3 {
			reclassify(vs, i)
		}
		*remaining = vs
		return Triangle{prev, cur.p, next}, true
	}
	return Triangle{}, false
}

// reclassify updates the classification of both neighbours of the ear removed at index i.
func reclassify(vs []vertex, i int) {
	n := len(vs)
	last := n - 1
	if i == 0 || i == n {
		vs[0].class = classify(Side(vs[last].p, vs[0].p, vs[1].p))
		vs[last].class = classify(Side(vs[last-1].p, vs[last].p, vs[0].p))
		return
	}
	next := vs[0].p
	if i != last {
		next = vs[i+1].p
	}
	vs[i].class = classify(Side(vs[i-1].p, vs[i].p, next))
	prev := vs[last].p
	if i != 1 {
		prev = vs[i-2].p
	}
	vs[i-1].class = classify(Side(prev, vs[i-1].p, vs[i].p))
}

func allOutside(v1, v2, v3 nv.NVector, vs []vertex) bool {
	for _, v := range vs {
		if v.class != convex && insideOrEdge(v.p, v1, v2, v3) {
			return false
		}
	}
	return true
}

// insideOrEdge returns whether p is inside the triangle (v1, v2, v3) or on one of its edges,
// vertices excluded.
func insideOrEdge(p, v1, v2, v3 nv.NVector) bool {
	if p == v1 || p == v2 || p == v3 {
		return false
	}
	sign := 1.0
	if Side(v1, v2, v3) < 0 {
		sign = -1
	}
	s1 := ExactSide(p.Vec3, v1.Vec3, v2.Vec3) * sign
	s2 := ExactSide(p.Vec3, v2.Vec3, v3.Vec3) * sign
	s3 := ExactSide(p.Vec3, v3.Vec3, v1.Vec3) * sign

	onEdge := false
	if nv.EqZero(s1) && s2 > 0 && s3 > 0 {
		onEdge = true
	}
	if nv.EqZero(s2) && s1 > 0 && s3 > 0 {
		if onEdge {
			// on (v1, v2) and (v2, v3): p is v2.
			return false
		}
		onEdge = true
	}
	if nv.EqZero(s3) && s1 > 0 && s2 > 0 {
		if onEdge {
			// p is v1 or v3.
			return false
		}
		onEdge = true
	}
	return onEdge || (s1 > 0 && s2 > 0 && s3 > 0)
}
