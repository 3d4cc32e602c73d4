/*Package galaxy samples idealized galaxies: a central black hole, a bulge and
a disc of stars. A galaxy is built once, by New, by running a fixed list of
stages in order. Each stage checks that the stage before it has run, so there
is no way to observe a half-built galaxy.
*/
package galaxy

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/phys"
	"github.com/phil-mansfield/ics/rand"
)

// Galaxy is a fully sampled galaxy. Index 0 of its ensemble is the black
// hole, followed by NBulge bulge stars and then NDisc disc stars.
type Galaxy struct {
	cfg           Config
	nBulge, nDisc int
	gen           *rand.Generator
	log           *zap.Logger
	ens           *ics.Ensemble
}

// New samples a galaxy described by cfg. If gen is nil, a PCG generator
// seeded with the current time is used; its seed is available from Seed. If
// logger is nil, nothing is logged.
func New(cfg *Config, gen *rand.Generator, logger *zap.Logger) (*Galaxy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = rand.NewTimeSeed(rand.PCG)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Galaxy{cfg: *cfg, gen: gen, log: logger}
	g.nBulge = int(math.Floor(float64(cfg.N) * cfg.BulgeFraction))
	g.nDisc = cfg.N - g.nBulge

	g.log.Debug(
		"Sampling galaxy",
		zap.Int("stars", cfg.N),
		zap.Int("bulge", g.nBulge),
		zap.Int("disc", g.nDisc),
		zap.Stringer("algorithm", gen.Algorithm()),
		zap.Uint64("seed", gen.Seed()),
	)

	d := draft{ens: ics.NewEnsemble(1 + cfg.N)}
	for _, st := range pipeline {
		var err error
		if d, err = st.run(g, d); err != nil {
			return nil, fmt.Errorf("galaxy stage '%s': %w", st.name, err)
		}
		g.log.Debug(
			"Finished stage",
			zap.String("stage", st.name),
			zap.Int("particles", d.ens.Len()),
			zap.Int("staged", len(d.xs)),
		)
	}
	g.ens = d.ens

	return g, nil
}

// Config returns a copy of the config the galaxy was built from.
func (g *Galaxy) Config() Config { return g.cfg }

func (g *Galaxy) NBulge() int  { return g.nBulge }
func (g *Galaxy) NDisc() int   { return g.nDisc }
func (g *Galaxy) Seed() uint64 { return g.gen.Seed() }

// BulgeIndices returns the half-open index range [lo, hi) of bulge stars in
// the ensemble.
func (g *Galaxy) BulgeIndices() (lo, hi int) { return 1, 1 + g.nBulge }

// DiscIndices returns the half-open index range [lo, hi) of disc stars in
// the ensemble.
func (g *Galaxy) DiscIndices() (lo, hi int) {
	return 1 + g.nBulge, 1 + g.nBulge + g.nDisc
}

// Ensemble returns a copy of the galaxy's particles.
func (g *Galaxy) Ensemble() *ics.Ensemble { return g.ens.Clone() }

// Snapshot returns a copy of the galaxy's particles tagged with G.
func (g *Galaxy) Snapshot() *ics.Snapshot { return g.ens.Snapshot(g.cfg.G) }

// Stages returns the names of the build stages in the order they run.
func Stages() []string {
	names := make([]string, len(pipeline))
	for i := range pipeline {
		names[i] = pipeline[i].name
	}
	return names
}

// draft is a galaxy under construction. The black hole goes straight into
// ens; stars are staged column by column and only join ens at commit, once
// every column has been filled.
type draft struct {
	ens           *ics.Ensemble
	xs, ys, zs    []float64
	ms            []float64
	vxs, vys, vzs []float64
}

type stage struct {
	name string
	run  func(g *Galaxy, d draft) (draft, error)
}

var pipeline = []stage{
	{"black_hole", addBlackHole},
	{"bulge", createBulge},
	{"disc", createDisc},
	{"star_mass", assignStarMass},
	{"velocity", assignVelocity},
	{"commit", commit},
}

func addBlackHole(g *Galaxy, d draft) (draft, error) {
	if d.ens.Len() != 0 {
		return d, ics.InvalidStatef(
			"black hole must be the first particle, but %d exist", d.ens.Len(),
		)
	}
	err := d.ens.Append(ics.Particle{
		Mass: phys.BlackHoleMasses * g.cfg.SolarMass,
	})
	return d, err
}

func createBulge(g *Galaxy, d draft) (draft, error) {
	if d.ens.Len() != 1 {
		return d, ics.InvalidStatef("bulge requires the black hole to be placed")
	} else if len(d.xs) != 0 {
		return d, ics.InvalidStatef(
			"bulge must be staged first, but %d stars exist", len(d.xs),
		)
	}

	for i := 0; i < g.nBulge; i++ {
		r := g.gen.Normal(0, g.cfg.BulgeHeight)
		sin, cos := math.Sincos(g.gen.Angle())
		z := g.gen.Normal(0, g.cfg.SigmaZ)

		d.xs = append(d.xs, r*cos)
		d.ys = append(d.ys, r*sin)
		d.zs = append(d.zs, z)
	}
	return d, nil
}

func createDisc(g *Galaxy, d draft) (draft, error) {
	if len(d.xs) != g.nBulge {
		return d, ics.InvalidStatef(
			"disc requires %d bulge stars, but %d are staged",
			g.nBulge, len(d.xs),
		)
	}

	h := g.cfg.SigmaR / 2
	for i := 0; i < g.nDisc; i++ {
		r := g.cfg.R * math.Sqrt(g.gen.Uniform(0, 1))
		sin, cos := math.Sincos(g.gen.Angle())
		z := g.gen.Uniform(-h, h)

		d.xs = append(d.xs, r*cos)
		d.ys = append(d.ys, r*sin)
		d.zs = append(d.zs, z)
	}
	return d, nil
}

func assignStarMass(g *Galaxy, d draft) (draft, error) {
	if len(d.xs) != g.cfg.N {
		return d, ics.InvalidStatef(
			"star masses require %d positioned stars, but %d are staged",
			g.cfg.N, len(d.xs),
		)
	}

	imf, ok := IMFs[g.cfg.IMF]
	if !ok {
		return d, ics.InvalidArgumentf("unrecognized IMF '%s'", g.cfg.IMF)
	}

	d.ms = make([]float64, g.cfg.N)
	for i := range d.ms {
		d.ms[i] = imf(g.gen) * g.cfg.SolarMass
	}
	return d, nil
}

// assignVelocity gives every star an isotropic Gaussian velocity. The black
// hole keeps the zero velocity it was placed with.
func assignVelocity(g *Galaxy, d draft) (draft, error) {
	if len(d.ms) != g.cfg.N {
		return d, ics.InvalidStatef(
			"star velocities require %d star masses, but %d are staged",
			g.cfg.N, len(d.ms),
		)
	}

	n, sigma := g.cfg.N, g.cfg.VelocityScale
	d.vxs, d.vys, d.vzs = make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		d.vxs[i] = g.gen.Normal(0, sigma)
		d.vys[i] = g.gen.Normal(0, sigma)
		d.vzs[i] = g.gen.Normal(0, sigma)
	}
	return d, nil
}

func commit(g *Galaxy, d draft) (draft, error) {
	n := g.cfg.N
	lens := []int{
		len(d.xs), len(d.ys), len(d.zs), len(d.ms),
		len(d.vxs), len(d.vys), len(d.vzs),
	}
	for _, l := range lens {
		if l != n {
			return d, ics.InvalidStatef(
				"expected %d staged stars in every column, found lengths %v",
				n, lens,
			)
		}
	}

	ps := make([]ics.Particle, n)
	for i := range ps {
		ps[i] = ics.Particle{
			Mass: d.ms[i],
			Xs:   [3]float64{d.xs[i], d.ys[i], d.zs[i]},
			Vs:   [3]float64{d.vxs[i], d.vys[i], d.vzs[i]},
		}
	}
	if err := d.ens.Append(ps...); err != nil {
		return d, err
	}

	d.xs, d.ys, d.zs, d.ms = nil, nil, nil, nil
	d.vxs, d.vys, d.vzs = nil, nil, nil
	return d, nil
}
