/*Package planets builds small star + planet systems. Bodies are appended one
at a time: the star first, then planets on circular, co-planar orbits in the
x-y plane. After every planet the whole system is shifted so that its center
of mass sits at the origin.
*/
package planets

import (
	"math"

	"go.uber.org/zap"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/phys"
)

// System is a star together with its planets. Index 0 of its ensemble is
// always the star.
type System struct {
	g   float64
	ens *ics.Ensemble
	log *zap.Logger
}

// New returns an empty system using the SI value of G.
func New() *System {
	sys, _ := NewWithG(phys.G)
	return sys
}

// NewWithG returns an empty system with a custom gravitational constant,
// which is useful for working in non-SI units.
func NewWithG(G float64) (*System, error) {
	if !(G > 0) || math.IsInf(G, 0) {
		return nil, ics.InvalidArgumentf(
			"gravitational constant must be positive and finite, but is %g", G,
		)
	}
	return &System{g: G, ens: ics.NewEnsemble(0), log: zap.NewNop()}, nil
}

// Log sets the logger used to report bodies as they are added. A nil
// logger turns logging off.
func (sys *System) Log(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sys.log = logger
}

func (sys *System) G() float64 { return sys.g }
func (sys *System) Len() int   { return sys.ens.Len() }

// Ensemble returns a copy of the bodies added so far.
func (sys *System) Ensemble() *ics.Ensemble { return sys.ens.Clone() }

// Snapshot returns a copy of the bodies added so far, tagged with G.
func (sys *System) Snapshot() *ics.Snapshot { return sys.ens.Snapshot(sys.g) }

// AddStar places the central star at rest at the origin. It must be called
// exactly once, before any planets are added.
func (sys *System) AddStar(mass float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return ics.InvalidArgumentf(
			"star mass must be positive and finite, but is %g", mass,
		)
	} else if sys.ens.Len() > 0 {
		return ics.InvalidStatef(
			"system already has a star of mass %g; only one star is supported",
			sys.ens.Particle(0).Mass,
		)
	}

	if err := sys.ens.Append(ics.Particle{Mass: mass}); err != nil {
		return err
	}
	sys.log.Debug("Added star", zap.Float64("mass", mass))
	return nil
}

// AddPlanet puts a planet of the given mass on a circular orbit of the
// given radius around the star, moving counter-clockwise in the x-y plane,
// and then recenters positions on the barycenter. Velocities are left in the
// star's frame; use OffsetMomentum to move them to the barycentric frame.
//
// eccentricity must be in [0, 1) and inclination must be finite, but both
// are currently ignored: every orbit is circular and co-planar.
func (sys *System) AddPlanet(
	mass, radius, eccentricity, inclination float64,
) error {
	if sys.ens.Len() == 0 {
		return ics.InvalidStatef("a star must be added before any planets")
	} else if !(mass > 0) || math.IsInf(mass, 0) {
		return ics.InvalidArgumentf(
			"planet mass must be positive and finite, but is %g", mass,
		)
	} else if !(radius > 0) || math.IsInf(radius, 0) {
		return ics.InvalidArgumentf(
			"orbital radius must be positive and finite, but is %g", radius,
		)
	} else if !(eccentricity >= 0 && eccentricity < 1) {
		return ics.InvalidArgumentf(
			"eccentricity must be in [0, 1), but is %g", eccentricity,
		)
	} else if math.IsNaN(inclination) || math.IsInf(inclination, 0) {
		return ics.InvalidArgumentf(
			"inclination must be finite, but is %g", inclination,
		)
	}

	if eccentricity != 0 || inclination != 0 {
		sys.log.Warn(
			"Eccentricity and inclination are ignored; orbit will be circular",
			zap.Float64("eccentricity", eccentricity),
			zap.Float64("inclination", inclination),
		)
	}

	mStar := sys.ens.Particle(0).Mass
	v := CircularVelocity(sys.g, mStar, radius)

	next := sys.ens.Clone()
	err := next.Append(ics.Particle{
		Mass: mass,
		Xs:   [3]float64{radius, 0, 0},
		Vs:   [3]float64{0, v, 0},
	})
	if err != nil {
		return err
	}
	if err = next.Recenter(); err != nil {
		return err
	}
	sys.ens = next

	sys.log.Debug(
		"Added planet",
		zap.Int("index", next.Len()-1),
		zap.Float64("mass", mass),
		zap.Float64("radius", radius),
		zap.Float64("vy", v),
	)
	return nil
}

// CenterOfMass returns the mass-weighted centroid of the system's positions.
func (sys *System) CenterOfMass() ([3]float64, error) {
	return sys.ens.CenterOfMass()
}

// OffsetMomentum boosts every body so that the system's total momentum is
// zero. AddPlanet never does this on its own.
func (sys *System) OffsetMomentum() error {
	vcom, err := sys.ens.CenterOfMassVelocity()
	if err != nil {
		return err
	}
	sys.ens.Boost([3]float64{-vcom[0], -vcom[1], -vcom[2]})
	return nil
}

// CircularVelocity returns the speed of a test particle on a circular orbit
// of radius r around a point mass M.
func CircularVelocity(G, M, r float64) float64 {
	return math.Sqrt(G * M / r)
}
