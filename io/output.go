package io

import (
	"bufio"
	"io"
	"strconv"

	"github.com/phil-mansfield/ics"
)

// WriteSnapshot writes snap as a whitespace-separated table with one row per
// particle and the columns mass, x, y, z, vx, vy, vz. The table is preceded
// by '#' comment lines giving G and the particle count. Values are written
// with enough digits to be read back exactly.
func WriteSnapshot(wr io.Writer, snap *ics.Snapshot) error {
	buf := bufio.NewWriter(wr)

	buf.WriteString("# G = ")
	buf.WriteString(formatFloat(snap.G))
	buf.WriteString("\n# N = ")
	buf.WriteString(strconv.Itoa(snap.Len()))
	buf.WriteString("\n# mass x y z vx vy vz\n")

	cols := [][]float64{
		snap.Mass, snap.X, snap.Y, snap.Z, snap.Vx, snap.Vy, snap.Vz,
	}
	for i := 0; i < snap.Len(); i++ {
		for j, col := range cols {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(formatFloat(col[i]))
		}
		buf.WriteByte('\n')
	}

	return buf.Flush()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
