package spherical

import (
	"fmt"
	"math"
	"sort"

	nv "github.com/ChristopherRabotin/nvector"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
)

// LatitudeInterval is a closed interval of latitudes in [-90, 90] degrees, empty when lo > hi.
type LatitudeInterval struct {
	r1.Interval // radians
}

// LongitudeInterval is a closed interval of longitudes on the circle. The interval is inverted
// (lo > hi) when it crosses the antimeridian.
type LongitudeInterval struct {
	s1.Interval // radians
}

var fullLatitude = r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}

// NewLatitudeInterval returns the interval [lo, hi].
func NewLatitudeInterval(lo, hi nv.Angle) LatitudeInterval {
	return LatitudeInterval{r1.Interval{Lo: lo.Radians(), Hi: hi.Radians()}}
}

// NewLongitudeInterval returns the interval going east from lo to hi.
func NewLongitudeInterval(lo, hi nv.Angle) LongitudeInterval {
	return LongitudeInterval{s1.IntervalFromEndpoints(lo.Radians(), hi.Radians())}
}

// South returns the southernmost latitude.
func (i LatitudeInterval) South() nv.Angle { return nv.AngleFromRadians(i.Interval.Lo) }

// North returns the northernmost latitude.
func (i LatitudeInterval) North() nv.Angle { return nv.AngleFromRadians(i.Interval.Hi) }

// IsFull returns whether this interval spans from pole to pole.
func (i LatitudeInterval) IsFull() bool {
	return i.South() == -nv.QuarterCircle && i.North() == nv.QuarterCircle
}

// ContainsLatitude returns whether lat is in this interval.
func (i LatitudeInterval) ContainsLatitude(lat nv.Angle) bool {
	return i.Contains(lat.Radians())
}

// West returns the westernmost longitude.
func (i LongitudeInterval) West() nv.Angle { return nv.AngleFromRadians(i.Interval.Lo) }

// East returns the easternmost longitude.
func (i LongitudeInterval) East() nv.Angle { return nv.AngleFromRadians(i.Interval.Hi) }

// Span returns the angle from the west to the east of this interval: 0 if empty.
func (i LongitudeInterval) Span() nv.Angle {
	switch {
	case i.IsEmpty():
		return 0
	case i.IsFull():
		return nv.FullCircle
	case i.IsInverted():
		return i.East() - i.West() + nv.FullCircle
	}
	return i.East() - i.West()
}

// ContainsLongitude returns whether lon is in this interval.
func (i LongitudeInterval) ContainsLongitude(lon nv.Angle) bool {
	return i.Contains(lon.Radians())
}

// latitudeIntervalFromMinorArc returns the latitudes spanned by ma, including the vertex of its great
// circle if ma crosses it.
func latitudeIntervalFromMinorArc(ma MinorArc, lls, lle nv.LatLong) LatitudeInterval {
	n := ma.normal
	// m = n x north pole.
	m := nv.Vec3{X: n.Y, Y: -n.X}
	ms := m.Dot(ma.start.Vec3)
	me := m.Dot(ma.end.Vec3)

	lo, hi := lls.Latitude, lle.Latitude
	if lo > hi {
		lo, hi = hi, lo
	}
	if ms*me < 0 || nv.EqZero(ms) || nv.EqZero(me) {
		vertex := nv.AngleFromRadians(math.Atan2(math.Hypot(n.X, n.Y), math.Abs(n.Z)))
		if nv.Lte(ms, 0) && nv.Gte(me, 0) {
			hi = vertex
		}
		if nv.Lte(me, 0) && nv.Gte(ms, 0) {
			lo = -vertex
		}
	}
	return NewLatitudeInterval(lo, hi)
}

// longitudeIntervalFromMinorArc returns the shortest interval joining the longitudes of both ends.
func longitudeIntervalFromMinorArc(lls, lle nv.LatLong) LongitudeInterval {
	return LongitudeInterval{s1.IntervalFromPointPair(lls.Longitude.Radians(), lle.Longitude.Radians())}
}

// Rectangle is a region bounded by two parallels and two meridians.
type Rectangle struct {
	Lat LatitudeInterval
	Lon LongitudeInterval
}

// EmptyRectangle returns the rectangle containing no position.
func EmptyRectangle() Rectangle {
	return Rectangle{LatitudeInterval{r1.EmptyInterval()}, LongitudeInterval{s1.EmptyInterval()}}
}

// FullRectangle returns the rectangle containing all positions.
func FullRectangle() Rectangle {
	return Rectangle{LatitudeInterval{fullLatitude}, LongitudeInterval{s1.FullInterval()}}
}

// RectangleFromNESW returns the rectangle of the given bounding parallels and meridians.
func RectangleFromNESW(north, east, south, west nv.Angle) Rectangle {
	return Rectangle{NewLatitudeInterval(south, north), NewLongitudeInterval(west, east)}
}

// RectangleFromMinorArc returns the smallest rectangle containing ma.
func RectangleFromMinorArc(ma MinorArc) Rectangle {
	lls := ma.start.ToLatLong()
	lle := ma.end.ToLatLong()
	return Rectangle{latitudeIntervalFromMinorArc(ma, lls, lle), longitudeIntervalFromMinorArc(lls, lle)}
}

// RectangleFromUnion returns the smallest rectangle containing all given rectangles.
func RectangleFromUnion(rs []Rectangle) Rectangle {
	res := EmptyRectangle()
	for _, r := range rs {
		res = res.Union(r)
	}
	return res
}

// ContainsPoint returns whether ll is inside this rectangle or on its boundary.
func (r Rectangle) ContainsPoint(ll nv.LatLong) bool {
	return r.Lat.ContainsLatitude(ll.Latitude) && r.Lon.ContainsLongitude(ll.Longitude)
}

// ContainsRectangle returns whether o is entirely inside this rectangle.
func (r Rectangle) ContainsRectangle(o Rectangle) bool {
	return r.Lat.ContainsInterval(o.Lat.Interval) && r.Lon.ContainsInterval(o.Lon.Interval)
}

// SouthWest returns the south-west corner of this rectangle.
func (r Rectangle) SouthWest() nv.LatLong {
	return nv.LatLong{Latitude: r.Lat.South(), Longitude: r.Lon.West()}
}

// NorthEast returns the north-east corner of this rectangle.
func (r Rectangle) NorthEast() nv.LatLong {
	return nv.LatLong{Latitude: r.Lat.North(), Longitude: r.Lon.East()}
}

// IsEmpty returns whether this rectangle contains no position.
func (r Rectangle) IsEmpty() bool { return r.Lat.IsEmpty() }

// IsFull returns whether this rectangle contains all positions.
func (r Rectangle) IsFull() bool { return r.IsLatitudeFull() && r.IsLongitudeFull() }

// IsLatitudeFull returns whether the latitude interval spans from pole to pole.
func (r Rectangle) IsLatitudeFull() bool { return r.Lat.IsFull() }

// IsLongitudeFull returns whether the longitude interval spans all meridians.
func (r Rectangle) IsLongitudeFull() bool { return r.Lon.IsFull() }

// Expand returns this rectangle expanded by amount on all sides. Latitudes are clamped to the poles
// and the longitude interval becomes full if it wraps around the whole circle.
func (r Rectangle) Expand(amount nv.Angle) Rectangle {
	if r.IsEmpty() {
		return r
	}
	m := amount.Radians()
	lat := r.Lat.Expanded(m).Intersection(fullLatitude)
	lon := r.Lon.Expanded(m)
	if !r.Lon.IsEmpty() && r.Lon.Span()+2*amount >= nv.FullCircle {
		lon = s1.FullInterval()
	}
	return Rectangle{LatitudeInterval{lat}, LongitudeInterval{lon}}
}

// ExpandToNorthPole returns this rectangle extended to the north pole, with all longitudes.
func (r Rectangle) ExpandToNorthPole() Rectangle {
	lat := r1.Interval{Lo: r.Lat.Interval.Lo, Hi: fullLatitude.Hi}
	return Rectangle{LatitudeInterval{lat}, LongitudeInterval{s1.FullInterval()}}
}

// ExpandToSouthPole returns this rectangle extended to the south pole, with all longitudes.
func (r Rectangle) ExpandToSouthPole() Rectangle {
	lat := r1.Interval{Lo: fullLatitude.Lo, Hi: r.Lat.Interval.Hi}
	return Rectangle{LatitudeInterval{lat}, LongitudeInterval{s1.FullInterval()}}
}

// PolarClosure returns this rectangle with all longitudes if it contains either pole.
func (r Rectangle) PolarClosure() Rectangle {
	if r.Lat.South() == -nv.QuarterCircle || r.Lat.North() == nv.QuarterCircle {
		return Rectangle{r.Lat, LongitudeInterval{s1.FullInterval()}}
	}
	return r
}

// Union returns the smallest rectangle containing this rectangle and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rectangle{
		LatitudeInterval{r.Lat.Interval.Union(o.Lat.Interval)},
		LongitudeInterval{r.Lon.Interval.Union(o.Lon.Interval)},
	}
}

func (r Rectangle) String() string {
	if r.IsEmpty() {
		return "Rectangle[empty]"
	}
	return fmt.Sprintf("Rectangle[sw=%s, ne=%s]", r.SouthWest(), r.NorthEast())
}

// CmpByLatitude orders rectangles by the centre of their latitude interval.
func CmpByLatitude(a, b Rectangle) int {
	return cmpFloat(a.Lat.Center(), b.Lat.Center())
}

// CmpByLongitude orders rectangles by the centre of their longitude interval.
func CmpByLongitude(a, b Rectangle) int {
	return cmpFloat(a.Lon.Center(), b.Lon.Center())
}

// SortByLatitude sorts rs in place from south to north.
func SortByLatitude(rs []Rectangle) {
	sort.SliceStable(rs, func(i, j int) bool { return CmpByLatitude(rs[i], rs[j]) < 0 })
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
