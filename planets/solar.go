package planets

import (
	"github.com/phil-mansfield/ics/phys"
)

// Body describes a planet by its mass (kg), orbital semi-major axis (m),
// eccentricity and inclination (radians).
type Body struct {
	Name                      string
	Mass, Radius              float64
	Eccentricity, Inclination float64
}

// SolarPlanets lists the eight planets of the Solar System in order of
// distance from the Sun.
var SolarPlanets = []Body{
	{"Mercury", 3.3011e23, 0.387098 * phys.AU, 0.205630, 0.122260},
	{"Venus", 4.8675e24, 0.723332 * phys.AU, 0.006772, 0.059248},
	{"Earth", phys.EarthMass, 1.000001 * phys.AU, 0.016709, 0},
	{"Mars", 6.4171e23, 1.523679 * phys.AU, 0.093400, 0.032289},
	{"Jupiter", 1.8982e27, 5.2044 * phys.AU, 0.048900, 0.022742},
	{"Saturn", 5.6834e26, 9.5826 * phys.AU, 0.056500, 0.043371},
	{"Uranus", 8.6810e25, 19.2184 * phys.AU, 0.046381, 0.013491},
	{"Neptune", 1.02413e26, 30.110 * phys.AU, 0.009456, 0.030892},
}

// AddBodies adds each body in order with AddPlanet. It stops at the first
// body that fails, leaving the bodies before it in place.
func (sys *System) AddBodies(bodies []Body) error {
	for _, b := range bodies {
		err := sys.AddPlanet(b.Mass, b.Radius, b.Eccentricity, b.Inclination)
		if err != nil {
			return err
		}
	}
	return nil
}

// SolarSystem returns the Sun and the eight planets on circular orbits at
// their semi-major axes. Eccentricities and inclinations are passed through
// to AddPlanet, which currently ignores them.
func SolarSystem() (*System, error) {
	sys := New()
	if err := sys.AddStar(phys.SolarMass); err != nil {
		return nil, err
	}
	if err := sys.AddBodies(SolarPlanets); err != nil {
		return nil, err
	}
	return sys, nil
}
