package galaxy

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/phys"
	"github.com/phil-mansfield/ics/rand"
)

// milkyWay returns a small Milky Way-ish config in SI units.
func milkyWay(n int, bulgeFrac float64) *Config {
	kpc := 3.0857e19
	con := DefaultConfig()
	con.N = n
	con.R = 15 * kpc
	con.Z = 0.3 * kpc
	con.SigmaR = 0.6 * kpc
	con.SigmaZ = 0.5 * kpc
	con.BulgeHeight = 1 * kpc
	con.BulgeFraction = bulgeFrac
	return con
}

func TestPopulationSizes(t *testing.T) {
	table := []struct {
		n             int
		frac          float64
		nBulge, nDisc int
	}{
		{1000, 0.2, 200, 800},
		{1000, 0, 0, 1000},
		{1000, 1, 1000, 0},
		{7, 0.5, 3, 4},
		{1, 0.99, 0, 1},
	}

	for i, test := range table {
		g, err := New(milkyWay(test.n, test.frac), rand.New(rand.PCG, 1), nil)
		require.NoError(t, err)

		if g.NBulge() != test.nBulge || g.NDisc() != test.nDisc {
			t.Errorf(
				"%d) Expected bulge/disc of %d/%d, got %d/%d", i,
				test.nBulge, test.nDisc, g.NBulge(), g.NDisc(),
			)
		}

		ens := g.Ensemble()
		assert.Equal(t, 1+test.n, ens.Len())
		for _, col := range [][]float64{
			ens.Mass(), ens.X(), ens.Y(), ens.Z(), ens.Vx(), ens.Vy(), ens.Vz(),
		} {
			assert.Len(t, col, 1+test.n)
		}
	}
}

func TestBlackHole(t *testing.T) {
	con := milkyWay(100, 0.3)
	g, err := New(con, rand.New(rand.PCG, 2), nil)
	require.NoError(t, err)

	bh := g.Ensemble().Particle(0)
	assert.Equal(t, phys.BlackHoleMasses*con.SolarMass, bh.Mass)
	assert.Equal(t, [3]float64{}, bh.Xs)
	assert.Equal(t, [3]float64{}, bh.Vs)
}

func TestDiscBounds(t *testing.T) {
	con := milkyWay(5000, 0.2)
	g, err := New(con, rand.New(rand.ChaCha8, 3), nil)
	require.NoError(t, err)

	ens := g.Ensemble()
	xs, ys, zs := ens.X(), ens.Y(), ens.Z()
	lo, hi := g.DiscIndices()
	require.Equal(t, 4000, hi-lo)

	for i := lo; i < hi; i++ {
		r := math.Sqrt(xs[i]*xs[i] + ys[i]*ys[i])
		if r > con.R*(1+1e-12) {
			t.Fatalf("Disc star %d has radius %g > R = %g", i, r, con.R)
		}
		if math.Abs(zs[i]) > con.SigmaR/2 {
			t.Fatalf("Disc star %d has height %g > SigmaR/2", i, zs[i])
		}
	}
}

func TestBulgeIsConcentrated(t *testing.T) {
	con := milkyWay(20000, 0.5)
	g, err := New(con, rand.New(rand.PCG, 4), nil)
	require.NoError(t, err)

	ens := g.Ensemble()
	xs, ys, zs := ens.X(), ens.Y(), ens.Z()
	lo, hi := g.BulgeIndices()
	require.Equal(t, 10000, hi-lo)

	// Planar radii are |Normal(0, BulgeHeight)|, so <R^2> = BulgeHeight^2.
	r2, z2 := 0.0, 0.0
	for i := lo; i < hi; i++ {
		r2 += xs[i]*xs[i] + ys[i]*ys[i]
		z2 += zs[i] * zs[i]
	}
	n := float64(hi - lo)
	assert.InEpsilon(t, con.BulgeHeight, math.Sqrt(r2/n), 0.05)
	assert.InEpsilon(t, con.SigmaZ, math.Sqrt(z2/n), 0.05)
}

func TestStarMasses(t *testing.T) {
	con := milkyWay(20000, 0.2)
	g, err := New(con, rand.New(rand.PCG, 5), nil)
	require.NoError(t, err)

	counts := make([]int, len(KroupaBins))
	ms := g.Ensemble().Mass()
	for i := 1; i < len(ms); i++ {
		m := ms[i] / con.SolarMass
		inBins := 0
		for j, bin := range KroupaBins {
			if m >= bin.Low && m < bin.High {
				inBins++
				counts[j]++
			}
		}
		require.Equal(t, 1, inBins, "mass %g solar masses", m)
		require.GreaterOrEqual(t, ms[i], 0.08*con.SolarMass)
		require.LessOrEqual(t, ms[i], 150*con.SolarMass)
	}

	n := float64(con.N)
	assert.InDelta(t, 0.08, float64(counts[0])/n, 0.01)
	assert.InDelta(t, 0.42, float64(counts[1])/n, 0.02)
	assert.InDelta(t, 0.50, float64(counts[2])/n, 0.02)
}

func TestVelocities(t *testing.T) {
	con := milkyWay(20000, 0.2)
	con.VelocityScale = 2e5
	g, err := New(con, rand.New(rand.PCG, 6), nil)
	require.NoError(t, err)

	ens := g.Ensemble()
	for _, vs := range [][]float64{ens.Vx(), ens.Vy(), ens.Vz()} {
		require.Equal(t, 0.0, vs[0], "black hole is at rest")

		sum, sqr := 0.0, 0.0
		for _, v := range vs[1:] {
			sum += v
			sqr += v * v
		}
		n := float64(len(vs) - 1)
		assert.InDelta(t, 0, sum/n, 0.05*con.VelocityScale)
		assert.InEpsilon(t, con.VelocityScale, math.Sqrt(sqr/n), 0.03)
	}
}

func TestSameSeedSameGalaxy(t *testing.T) {
	con := milkyWay(500, 0.4)
	g1, err := New(con, rand.New(rand.ChaCha8, 99), nil)
	require.NoError(t, err)
	g2, err := New(con, rand.New(rand.ChaCha8, 99), nil)
	require.NoError(t, err)
	g3, err := New(con, rand.New(rand.ChaCha8, 100), nil)
	require.NoError(t, err)

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.NotEqual(t, g1.Ensemble().X(), g3.Ensemble().X())
	assert.Equal(t, uint64(99), g1.Seed())
}

func TestTimeSeededGalaxyIsReproducible(t *testing.T) {
	con := milkyWay(50, 0.5)
	g1, err := New(con, nil, nil)
	require.NoError(t, err)
	g2, err := New(con, rand.New(rand.PCG, g1.Seed()), nil)
	require.NoError(t, err)
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestReadsAreCopies(t *testing.T) {
	g, err := New(milkyWay(10, 0.5), rand.New(rand.PCG, 7), nil)
	require.NoError(t, err)

	ens := g.Ensemble()
	ens.Translate([3]float64{1, 1, 1})
	assert.Equal(t, 0.0, g.Ensemble().X()[0])

	con := g.Config()
	con.N = 1
	assert.Equal(t, 10, g.Config().N)

	snap := g.Snapshot()
	assert.Equal(t, phys.G, snap.G)
	assert.Equal(t, 11, snap.Len())
}

func TestInvalidConfig(t *testing.T) {
	table := []struct {
		name   string
		modify func(con *Config)
	}{
		{"zero N", func(con *Config) { con.N = 0 }},
		{"negative N", func(con *Config) { con.N = -10 }},
		{"zero R", func(con *Config) { con.R = 0 }},
		{"infinite R", func(con *Config) { con.R = math.Inf(1) }},
		{"NaN Z", func(con *Config) { con.Z = math.NaN() }},
		{"negative SigmaR", func(con *Config) { con.SigmaR = -1 }},
		{"zero SigmaZ", func(con *Config) { con.SigmaZ = 0 }},
		{"zero BulgeHeight", func(con *Config) { con.BulgeHeight = 0 }},
		{"negative BulgeFraction", func(con *Config) { con.BulgeFraction = -0.1 }},
		{"large BulgeFraction", func(con *Config) { con.BulgeFraction = 1.1 }},
		{"zero SolarMass", func(con *Config) { con.SolarMass = 0 }},
		{"negative G", func(con *Config) { con.G = -1 }},
		{"zero VelocityScale", func(con *Config) { con.VelocityScale = 0 }},
		{"unknown IMF", func(con *Config) { con.IMF = "salpeter" }},
	}

	for _, test := range table {
		con := milkyWay(100, 0.2)
		test.modify(con)
		g, err := New(con, rand.New(rand.PCG, 8), nil)
		assert.Nil(t, g, test.name)
		assert.True(t, errors.Is(err, ics.ErrInvalidArgument), "%s: %v", test.name, err)
	}

	_, err := New(nil, nil, nil)
	assert.True(t, errors.Is(err, ics.ErrInvalidArgument))
}

func TestValidateNamesFields(t *testing.T) {
	con := milkyWay(0, 2)
	err := con.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'N'")
	assert.Contains(t, err.Error(), "'BulgeFraction'")

	con = milkyWay(10, 0.1)
	con.IMF = "chabrier"
	assert.Contains(t, con.Validate().Error(), "kroupa")
}

func TestStageOrder(t *testing.T) {
	assert.Equal(t, []string{
		"black_hole", "bulge", "disc", "star_mass", "velocity", "commit",
	}, Stages())
}

func TestStagePreconditions(t *testing.T) {
	con := milkyWay(10, 0.5)
	g := &Galaxy{cfg: *con, nBulge: 5, nDisc: 5, gen: rand.New(rand.PCG, 9)}
	empty := draft{ens: ics.NewEnsemble(0)}

	table := []struct {
		name string
		run  func(g *Galaxy, d draft) (draft, error)
	}{
		{"bulge", createBulge},
		{"star_mass", assignStarMass},
		{"velocity", assignVelocity},
		{"commit", commit},
	}
	for _, test := range table {
		_, err := test.run(g, empty)
		assert.True(t, errors.Is(err, ics.ErrInvalidState), "%s: %v", test.name, err)
	}

	d, err := addBlackHole(g, empty)
	require.NoError(t, err)
	_, err = createDisc(g, d)
	assert.True(t, errors.Is(err, ics.ErrInvalidState))
	_, err = addBlackHole(g, d)
	assert.True(t, errors.Is(err, ics.ErrInvalidState))
	assert.Equal(t, 1, d.ens.Len())
}

func BenchmarkGalaxy(b *testing.B) {
	con := milkyWay(10000, 0.2)
	gen := rand.New(rand.PCG, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(con, gen, nil)
	}
}
