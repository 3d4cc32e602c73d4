/*Package ics holds the particle ensembles produced by the initial condition
builders in planets and galaxy, along with the errors they return.
*/
package ics

// Particle is a single body as seen through an Ensemble. It is a value copy:
// changing it never changes the ensemble it came from.
type Particle struct {
	Mass float64
	Xs   [3]float64
	Vs   [3]float64
}

// Snapshot is the hand-off value for an external integrator: seven
// index-aligned columns plus the gravitational constant they were built with.
type Snapshot struct {
	G          float64
	Mass       []float64
	X, Y, Z    []float64
	Vx, Vy, Vz []float64
}

// Len returns the number of particles in the snapshot.
func (snap *Snapshot) Len() int { return len(snap.Mass) }
