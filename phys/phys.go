// Package phys contains the physical constants used when building initial
// conditions. Everything is in SI units.
package phys

const (
	// G is the Newtonian gravitational constant in m^3 kg^-1 s^-2.
	G = 6.67430e-11
	// SolarMass is the mass of the Sun in kg.
	SolarMass = 1.989e30
	// EarthMass is the mass of the Earth in kg.
	EarthMass = 5.972e24
	// AU is the astronomical unit in m.
	AU = 1.495978707e11

	// BlackHoleMasses is the mass of a galaxy's central black hole in units
	// of the galaxy's stellar mass unit.
	BlackHoleMasses = 1e6
)
