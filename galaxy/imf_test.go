package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/ics/rand"
)

func TestKroupaRange(t *testing.T) {
	gen := rand.New(rand.PCG, 11)
	for i := 0; i < 10000; i++ {
		m := Kroupa(gen)
		if m < 0.08 || m >= 150 {
			t.Fatalf("Kroupa mass %g outside of [0.08, 150)", m)
		}
	}
}

func TestKroupaBinsAreContiguous(t *testing.T) {
	for i := 1; i < len(KroupaBins); i++ {
		assert.Equal(t, KroupaBins[i-1].High, KroupaBins[i].Low)
		assert.Less(t, KroupaBins[i-1].Cumulative, KroupaBins[i].Cumulative)
	}
	assert.Equal(t, 1.0, KroupaBins[len(KroupaBins)-1].Cumulative)
}

func TestIMFNames(t *testing.T) {
	assert.Equal(t, []string{"kroupa"}, IMFNames())
}
