package ics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Ensemble is a set of particles stored as seven index-aligned columns.
// Particles can only be appended, never removed or reordered, and every
// column has the same length at all times.
type Ensemble struct {
	mass       []float64
	x, y, z    []float64
	vx, vy, vz []float64
}

// NewEnsemble returns an empty ensemble with room for capacity particles.
func NewEnsemble(capacity int) *Ensemble {
	if capacity < 0 {
		capacity = 0
	}
	return &Ensemble{
		mass: make([]float64, 0, capacity),
		x:    make([]float64, 0, capacity),
		y:    make([]float64, 0, capacity),
		z:    make([]float64, 0, capacity),
		vx:   make([]float64, 0, capacity),
		vy:   make([]float64, 0, capacity),
		vz:   make([]float64, 0, capacity),
	}
}

// Len returns the number of particles in the ensemble.
func (e *Ensemble) Len() int { return len(e.mass) }

// Append adds ps to the end of the ensemble. Every particle is checked
// before anything is written, so either all of ps is appended or none of it
// is.
func (e *Ensemble) Append(ps ...Particle) error {
	for i := range ps {
		if err := checkParticle(&ps[i]); err != nil {
			return InvalidArgumentf(
				"particle %d of %d: %s", i, len(ps), err.Error(),
			)
		}
	}

	for _, p := range ps {
		e.mass = append(e.mass, p.Mass)
		e.x = append(e.x, p.Xs[0])
		e.y = append(e.y, p.Xs[1])
		e.z = append(e.z, p.Xs[2])
		e.vx = append(e.vx, p.Vs[0])
		e.vy = append(e.vy, p.Vs[1])
		e.vz = append(e.vz, p.Vs[2])
	}
	return nil
}

type particleError string

func (err particleError) Error() string { return string(err) }

func checkParticle(p *Particle) error {
	if !(p.Mass > 0) || math.IsInf(p.Mass, 0) {
		return particleError("mass must be positive and finite")
	}
	for k := 0; k < 3; k++ {
		if !isFinite(p.Xs[k]) {
			return particleError("position must be finite")
		} else if !isFinite(p.Vs[k]) {
			return particleError("velocity must be finite")
		}
	}
	return nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Particle returns a copy of the i-th particle. It panics if i is out of
// range, like a slice index would.
func (e *Ensemble) Particle(i int) Particle {
	return Particle{
		Mass: e.mass[i],
		Xs:   [3]float64{e.x[i], e.y[i], e.z[i]},
		Vs:   [3]float64{e.vx[i], e.vy[i], e.vz[i]},
	}
}

func (e *Ensemble) Mass() []float64 { return clone(e.mass) }
func (e *Ensemble) X() []float64    { return clone(e.x) }
func (e *Ensemble) Y() []float64    { return clone(e.y) }
func (e *Ensemble) Z() []float64    { return clone(e.z) }
func (e *Ensemble) Vx() []float64   { return clone(e.vx) }
func (e *Ensemble) Vy() []float64   { return clone(e.vy) }
func (e *Ensemble) Vz() []float64   { return clone(e.vz) }

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// Clone returns a deep copy of the ensemble.
func (e *Ensemble) Clone() *Ensemble {
	return &Ensemble{
		mass: clone(e.mass),
		x:    clone(e.x),
		y:    clone(e.y),
		z:    clone(e.z),
		vx:   clone(e.vx),
		vy:   clone(e.vy),
		vz:   clone(e.vz),
	}
}

// Snapshot copies the ensemble into a Snapshot tagged with the
// gravitational constant G.
func (e *Ensemble) Snapshot(G float64) *Snapshot {
	return &Snapshot{
		G:    G,
		Mass: e.Mass(),
		X:    e.X(),
		Y:    e.Y(),
		Z:    e.Z(),
		Vx:   e.Vx(),
		Vy:   e.Vy(),
		Vz:   e.Vz(),
	}
}

// TotalMass returns the sum of all particle masses.
func (e *Ensemble) TotalMass() float64 { return floats.Sum(e.mass) }

// CenterOfMass returns the mass-weighted centroid of the particle positions.
func (e *Ensemble) CenterOfMass() ([3]float64, error) {
	return e.weightedMean(e.x, e.y, e.z, "center of mass")
}

// CenterOfMassVelocity returns the mass-weighted mean velocity.
func (e *Ensemble) CenterOfMassVelocity() ([3]float64, error) {
	return e.weightedMean(e.vx, e.vy, e.vz, "center of mass velocity")
}

func (e *Ensemble) weightedMean(
	x, y, z []float64, name string,
) ([3]float64, error) {
	mTot := e.TotalMass()
	if mTot == 0 {
		return [3]float64{}, DivisionUndefinedf(
			"%s of an ensemble with %d particles and zero total mass",
			name, e.Len(),
		)
	}
	return [3]float64{
		floats.Dot(e.mass, x) / mTot,
		floats.Dot(e.mass, y) / mTot,
		floats.Dot(e.mass, z) / mTot,
	}, nil
}

// Translate shifts every position by dx. Velocities are unchanged.
func (e *Ensemble) Translate(dx [3]float64) {
	floats.AddConst(dx[0], e.x)
	floats.AddConst(dx[1], e.y)
	floats.AddConst(dx[2], e.z)
}

// Boost shifts every velocity by dv. Positions are unchanged.
func (e *Ensemble) Boost(dv [3]float64) {
	floats.AddConst(dv[0], e.vx)
	floats.AddConst(dv[1], e.vy)
	floats.AddConst(dv[2], e.vz)
}

// Recenter translates the ensemble so that its center of mass is at the
// origin.
func (e *Ensemble) Recenter() error {
	com, err := e.CenterOfMass()
	if err != nil {
		return err
	}
	e.Translate([3]float64{-com[0], -com[1], -com[2]})
	return nil
}
