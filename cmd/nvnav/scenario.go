package main

import (
	"fmt"
	"time"

	"github.com/ChristopherRabotin/nvector"
	"github.com/ChristopherRabotin/nvector/spherical"
	"github.com/spf13/viper"
)

type positionConf struct {
	Name   string  `mapstructure:"name"`
	Lat    string  `mapstructure:"lat"`
	Lon    string  `mapstructure:"lon"`
	Height float64 `mapstructure:"height"` // metres
}

type legConf struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

type vehicleConf struct {
	Name     string  `mapstructure:"name"`
	Position string  `mapstructure:"position"`
	Bearing  string  `mapstructure:"bearing"`
	Speed    float64 `mapstructure:"speed"` // knots
}

// Place is a named geodetic position of the scenario.
type Place struct {
	Name string
	Pos  nvector.GeodeticPos
}

// Leg is a minor arc between two places.
type Leg struct {
	From, To Place
}

// Encounter is a pair of vehicles whose closest point of approach is wanted.
type Encounter struct {
	Names    [2]string
	Vehicles [2]spherical.Vehicle
}

// Scenario is everything nvnav computes, as read from a TOML file.
type Scenario struct {
	Places     []Place
	Legs       []Leg
	Encounters []Encounter
	Loop       []Place
	Probes     []Place // positions tested against the loop
	Samples    int
	Seed       uint64
	Horizon    time.Duration // CPA beyond this horizon are reported as beyond it
}

func parsePlace(c positionConf) (Place, error) {
	lat, err := nvector.ParseAngle(c.Lat)
	if err != nil {
		return Place{}, fmt.Errorf("latitude of `%s`: %w", c.Name, err)
	}
	lon, err := nvector.ParseAngle(c.Lon)
	if err != nil {
		return Place{}, fmt.Errorf("longitude of `%s`: %w", c.Name, err)
	}
	ll := nvector.NewLatLong(lat, lon)
	return Place{c.Name, nvector.GeodeticPos{HorizontalPosition: ll.AsNVector(), Height: nvector.Length(c.Height)}}, nil
}

func lookup(places map[string]Place, name, key string) (Place, error) {
	p, ok := places[name]
	if !ok {
		return Place{}, fmt.Errorf("%s: unknown position `%s`", key, name)
	}
	return p, nil
}

func lookupAll(places map[string]Place, names []string, key string) ([]Place, error) {
	ps := make([]Place, len(names))
	for i, name := range names {
		p, err := lookup(places, name, key)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

// readScenario reads the positions, legs, vehicles, encounters, loop and sampling sections of v.
func readScenario(v *viper.Viper) (Scenario, error) {
	var sc Scenario
	var positions []positionConf
	if err := v.UnmarshalKey("positions", &positions); err != nil {
		return sc, fmt.Errorf("positions: %w", err)
	}
	places := make(map[string]Place, len(positions))
	for _, c := range positions {
		if _, dup := places[c.Name]; dup {
			return sc, fmt.Errorf("positions: duplicate name `%s`", c.Name)
		}
		p, err := parsePlace(c)
		if err != nil {
			return sc, err
		}
		places[c.Name] = p
		sc.Places = append(sc.Places, p)
	}

	var legs []legConf
	if err := v.UnmarshalKey("legs", &legs); err != nil {
		return sc, fmt.Errorf("legs: %w", err)
	}
	for i, c := range legs {
		key := fmt.Sprintf("legs.%d", i)
		from, err := lookup(places, c.From, key)
		if err != nil {
			return sc, err
		}
		to, err := lookup(places, c.To, key)
		if err != nil {
			return sc, err
		}
		sc.Legs = append(sc.Legs, Leg{from, to})
	}

	var vehicles []vehicleConf
	if err := v.UnmarshalKey("vehicles", &vehicles); err != nil {
		return sc, fmt.Errorf("vehicles: %w", err)
	}
	fleet := make(map[string]spherical.Vehicle, len(vehicles))
	for _, c := range vehicles {
		p, err := lookup(places, c.Position, "vehicle "+c.Name)
		if err != nil {
			return sc, err
		}
		brg, err := nvector.ParseAngle(c.Bearing)
		if err != nil {
			return sc, fmt.Errorf("bearing of vehicle `%s`: %w", c.Name, err)
		}
		fleet[c.Name] = spherical.Vehicle{Position: p.Pos.HorizontalPosition, Bearing: brg, Speed: nvector.Speed(c.Speed) * nvector.Knot}
	}
	var pairs [][]string
	if err := v.UnmarshalKey("cpa.pairs", &pairs); err != nil {
		return sc, fmt.Errorf("cpa.pairs: %w", err)
	}
	for i, pair := range pairs {
		if len(pair) != 2 {
			return sc, fmt.Errorf("cpa.pairs.%d: expected two vehicles, got %d", i, len(pair))
		}
		var e Encounter
		for j, name := range pair {
			veh, ok := fleet[name]
			if !ok {
				return sc, fmt.Errorf("cpa.pairs.%d: unknown vehicle `%s`", i, name)
			}
			e.Names[j] = name
			e.Vehicles[j] = veh
		}
		sc.Encounters = append(sc.Encounters, e)
	}
	sc.Horizon = v.GetDuration("cpa.horizon")

	var err error
	if sc.Loop, err = lookupAll(places, v.GetStringSlice("loop.vertices"), "loop.vertices"); err != nil {
		return sc, err
	}
	if sc.Probes, err = lookupAll(places, v.GetStringSlice("loop.probes"), "loop.probes"); err != nil {
		return sc, err
	}

	sc.Samples = v.GetInt("sample.count")
	if sc.Samples < 0 {
		return sc, fmt.Errorf("sample.count must be positive, got %d", sc.Samples)
	}
	sc.Seed = uint64(v.GetInt64("sample.seed"))
	return sc, nil
}
