package galaxy

import (
	"flag"
	"fmt"
	"os"
	"path"
	"testing"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/ics/rand"
)

var plotDir = flag.String(
	"plot", "", "Directory to write diagnostic galaxy plots to. "+
		"Plots need python and matplotlib and are skipped when unset.",
)

// TestPlotGalaxy writes face-on and edge-on views of a sampled galaxy. Run
// with go test -run PlotGalaxy -plot some/dir.
func TestPlotGalaxy(t *testing.T) {
	if *plotDir == "" {
		t.Skip("-plot not set")
	}
	if err := os.MkdirAll(*plotDir, 0777); err != nil {
		t.Fatal(err.Error())
	}

	plt.Reset()

	con := milkyWay(20000, 0.2)
	g, err := New(con, rand.New(rand.PCG, 1), nil)
	if err != nil {
		t.Fatal(err.Error())
	}
	ens := g.Ensemble()
	xs, ys, zs := ens.X(), ens.Y(), ens.Z()

	views := []struct {
		name   string
		hs, vs []float64
	}{
		{"face_on", xs, ys},
		{"edge_on", xs, zs},
	}

	for _, view := range views {
		bLo, bHi := g.BulgeIndices()
		dLo, dHi := g.DiscIndices()

		plt.Figure(plt.FigSize(8, 8))
		plt.Plot(view.hs[dLo:dHi], view.vs[dLo:dHi], ",", plt.C("b"))
		plt.Plot(view.hs[bLo:bHi], view.vs[bLo:bHi], ",", plt.C("r"))
		plt.Title(fmt.Sprintf(
			"N = %d, bulge fraction = %.2f (%s)",
			con.N, con.BulgeFraction, view.name,
		))
		plt.XLim(-1.1*con.R, +1.1*con.R)
		plt.YLim(-1.1*con.R, +1.1*con.R)
		plt.SaveFig(path.Join(*plotDir, view.name+".png"))
	}

	plt.Execute()
}
