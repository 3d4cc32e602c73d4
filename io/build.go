package io

import (
	"go.uber.org/zap"

	"github.com/phil-mansfield/ics/galaxy"
	"github.com/phil-mansfield/ics/phys"
	"github.com/phil-mansfield/ics/planets"
)

// NewGalaxy samples the galaxy described by a [Galaxy] config.
func NewGalaxy(con *GalaxyConfig, logger *zap.Logger) (*galaxy.Galaxy, error) {
	gen, err := con.Generator()
	if err != nil {
		return nil, err
	}
	return galaxy.New(&con.Config, gen, logger)
}

// NewSystem builds the planetary system described by a [Planets] config.
// The star (or the Solar System) comes first, then planets from Table in
// file order, then [Planet] sections in order of increasing radius.
func NewSystem(wrap *PlanetsWrapper, logger *zap.Logger) (*planets.System, error) {
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}

	sys, err := planets.NewWithG(wrap.Planets.G)
	if err != nil {
		return nil, err
	}
	sys.Log(logger)

	if wrap.Planets.SolarSystem {
		err = sys.AddStar(phys.SolarMass)
		if err == nil {
			err = sys.AddBodies(planets.SolarPlanets)
		}
	} else {
		err = sys.AddStar(wrap.Star.Mass)
	}
	if err != nil {
		return nil, err
	}

	if wrap.Planets.ValidTable() {
		bodies, err := ReadPlanetTable(wrap.Planets.Table)
		if err != nil {
			return nil, err
		}
		if err = sys.AddBodies(bodies); err != nil {
			return nil, err
		}
	}

	for _, p := range wrap.SortedPlanets() {
		err = sys.AddPlanet(p.Mass, p.Radius, p.Eccentricity, p.Inclination)
		if err != nil {
			return nil, err
		}
	}

	if wrap.Planets.OffsetMomentum {
		if err = sys.OffsetMomentum(); err != nil {
			return nil, err
		}
	}
	return sys, nil
}
