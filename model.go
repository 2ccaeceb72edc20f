package nvector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned when looking up a model which does not exist.
var ErrUnknownModel = errors.New("unknown model")

// LongitudeRange is the convention used by a model to express longitudes.
type LongitudeRange uint8

// Longitude ranges.
const (
	L180 LongitudeRange = iota // [-180, 180]
	L360                       // [0, 360)
)

// Model associates an identifier and a longitude convention to a surface.
type Model struct {
	ID             string
	Surface        Surface
	LongitudeRange LongitudeRange
}

// Models lists all predefined models.
var Models = []Model{
	{"WGS84", WGS84, L180},
	{"GRS80", GRS80, L180},
	{"WGS72", WGS72, L180},
	{"ETRS89", GRS80, L180},
	{"NAD83", GRS80, L180},
	{"ED50", Intl1924, L180},
	{"IRL_1975", AiryModified, L180},
	{"NAD27", Clarke1866, L180},
	{"NTF", Clarke1880IGN, L180},
	{"OSGB36", Airy1830, L180},
	{"POTSDAM", Bessel1841, L180},
	{"TOKYO_JAPAN", Bessel1841, L180},
	{"MARS_2000", Mars2000, L360},
	{"MOLA", MOLA, L360},
	{"S84", WGS84.Sphere(), L180},
	{"SMARS_2000", Mars2000.Sphere(), L360},
	{"EARTH", EarthSphere, L180},
	{"MOON", MoonSphere, L180},
}

// ModelByID returns the predefined model of the given identifier (case insensitive).
func ModelByID(id string) (Model, error) {
	for _, m := range Models {
		if strings.EqualFold(m.ID, id) {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w `%s`", ErrUnknownModel, id)
}

// Longitude returns the longitude of the given position expressed in the range of this model.
func (m Model) Longitude(ll LatLong) Angle {
	if m.LongitudeRange == L360 {
		return ll.Longitude.Normalised()
	}
	return ll.Longitude
}

func (m Model) String() string {
	return fmt.Sprintf("%s %s", m.ID, m.Surface)
}
