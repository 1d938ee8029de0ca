package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// KeyGrid produces world positions for a rows x cols block of uniformly
// spaced keys, centered on x=0. Rows advance toward the viewer
// (decreasing z from startZ); rowYAdjust holds a per-row vertical
// micro-adjustment that fakes a stepped keyboard profile. The result is
// deterministic for a given parameter set: row-major, left to right.
func KeyGrid(rows, cols int, spacingX, spacingZ, baseY, startZ float32, rowYAdjust []float32) []mgl32.Vec3 {
	startX := -(float32(cols-1) * spacingX) / 2

	positions := make([]mgl32.Vec3, 0, rows*cols)
	for row := 0; row < rows; row++ {
		y := baseY
		if row < len(rowYAdjust) {
			y += rowYAdjust[row]
		}
		z := startZ - float32(row)*spacingZ
		for col := 0; col < cols; col++ {
			x := startX + float32(col)*spacingX
			positions = append(positions, mgl32.Vec3{x, y, z})
		}
	}
	return positions
}

// VariableRow lays out a single row of keys with individual widths and a
// fixed gap between neighbors, centered on x=0. It returns the center x
// of each key in order and the total row width
// (sum of widths + spacing*(len-1)).
func VariableRow(widths []float32, spacing float32) (centers []float32, totalWidth float32) {
	if len(widths) == 0 {
		return nil, 0
	}
	for _, w := range widths {
		totalWidth += w
	}
	totalWidth += spacing * float32(len(widths)-1)

	centers = make([]float32, 0, len(widths))
	cursor := -totalWidth / 2
	for _, w := range widths {
		centers = append(centers, cursor+w/2)
		cursor += w + spacing
	}
	return centers, totalWidth
}
