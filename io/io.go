/*Package io handles everything which touches the file system: reading config
files and planet tables, and reading and writing particle columns. None of
the builders depend on it.
*/
package io

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/ics"
	"github.com/phil-mansfield/ics/planets"
)

// Column indices of a planet table.
const (
	massCol = iota
	radiusCol
	eccentricityCol
	inclinationCol
)

// ReadPlanetTable reads a whitespace-separated table of planets with the
// columns mass, radius, eccentricity and inclination. Rows are returned in
// file order and named after their line in the table.
func ReadPlanetTable(fname string) ([]planets.Body, error) {
	colIdxs := []int{massCol, radiusCol, eccentricityCol, inclinationCol}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	ms, rs := cols[0], cols[1]
	es, is := cols[2], cols[3]
	bodies := make([]planets.Body, len(ms))
	for i := range bodies {
		bodies[i] = planets.Body{
			Name:         fmt.Sprintf("%s:%d", fname, i),
			Mass:         ms[i],
			Radius:       rs[i],
			Eccentricity: es[i],
			Inclination:  is[i],
		}
	}
	return bodies, nil
}

// ReadSnapshot reads a file written by WriteSnapshot.
func ReadSnapshot(fname string) (*ics.Snapshot, error) {
	G, err := readHeaderG(fname)
	if err != nil {
		return nil, err
	}

	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3, 4, 5, 6}, nil)
	if err != nil {
		return nil, err
	}

	return &ics.Snapshot{
		G:    G,
		Mass: cols[0],
		X:    cols[1],
		Y:    cols[2],
		Z:    cols[3],
		Vx:   cols[4],
		Vy:   cols[5],
		Vz:   cols[6],
	}, nil
}

// readHeaderG finds the "# G = ..." line at the top of a snapshot file.
func readHeaderG(fname string) (float64, error) {
	f, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		var G float64
		if n, _ := fmt.Sscanf(line, "# G = %g", &G); n == 1 {
			return G, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, fmt.Errorf("No '# G = ...' header line in '%s'.", fname)
}
