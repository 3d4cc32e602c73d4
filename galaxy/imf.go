package galaxy

import (
	"sort"

	"github.com/phil-mansfield/ics/rand"
)

// IMF draws a single stellar mass, in solar masses, from an initial mass
// function.
type IMF func(gen *rand.Generator) float64

// IMFs contains every initial mass function that a Config can name.
var IMFs = map[string]IMF{
	"kroupa": Kroupa,
}

// IMFNames returns the keys of IMFs in sorted order.
func IMFNames() []string {
	names := make([]string, 0, len(IMFs))
	for name := range IMFs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KroupaBins are the mass ranges, in solar masses, of the three segments of
// Kroupa. Each range is [Low, High), and Cumulative is the probability of
// landing in this bin or an earlier one.
var KroupaBins = []struct {
	Low, High, Cumulative float64
}{
	{0.08, 0.5, 0.08},
	{0.5, 1, 0.5},
	{1, 150, 1},
}

// Kroupa is a rough stand-in for a Kroupa broken power law: one of three
// mass bins is picked by a uniform draw, and the mass is then uniform within
// that bin.
func Kroupa(gen *rand.Generator) float64 {
	r := gen.Uniform(0, 1)
	for _, bin := range KroupaBins {
		if r < bin.Cumulative {
			return gen.Uniform(bin.Low, bin.High)
		}
	}
	last := KroupaBins[len(KroupaBins)-1]
	return gen.Uniform(last.Low, last.High)
}
