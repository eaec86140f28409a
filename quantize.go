package mapart

import "fmt"

const (
	// GridSize is the width and height of a map in blocks.
	GridSize = 128
	// Cells is the number of blocks on a map.
	Cells = GridSize * GridSize
	// AlphaThreshold is the lowest alpha a cell needs to be painted.
	AlphaThreshold = 100
)

// Grid holds one label per map cell, indexed [z][x] (row-major).
type Grid [GridSize][GridSize]string

func (g *Grid) At(x, z int) string { return g[z][x] }

// Row returns row z. The slice aliases the grid.
func (g *Grid) Row(z int) []string { return g[z][:] }

// HasTransparency reports whether any cell holds the Transparent marker.
func (g *Grid) HasTransparency() bool {
	for z := range g {
		for x := range g[z] {
			if g[z][x] == Transparent {
				return true
			}
		}
	}
	return false
}

// Counts returns how many cells carry each label.
func (g *Grid) Counts() map[string]int {
	out := make(map[string]int)
	for z := range g {
		for _, l := range g[z] {
			out[l]++
		}
	}
	return out
}

// CheckPixels reports whether a buffer can be fed to Quantize.
func CheckPixels(pixels []byte, channels int) error {
	if channels != 3 && channels != 4 {
		return fmt.Errorf("mapart: unsupported channel count %d", channels)
	}
	if len(pixels) != Cells*channels {
		return fmt.Errorf("mapart: pixel buffer has %d bytes, want %d (%dx%dx%d)",
			len(pixels), Cells*channels, GridSize, GridSize, channels)
	}
	return nil
}

// Quantize maps a 128x128 interleaved RGB or RGBA buffer onto labels from m.
// Cells with alpha below AlphaThreshold become Transparent. The returned base
// is the requested one, or DefaultBase when m does not contain it.
//
// The buffer must pass CheckPixels; Quantize panics otherwise.
func Quantize(pixels []byte, channels int, base string, m Matcher) (*Grid, string) {
	if err := CheckPixels(pixels, channels); err != nil {
		panic(err)
	}
	grid := new(Grid)
	for z := range GridSize {
		for x := range GridSize {
			off := (z*GridSize + x) * channels
			alpha := uint8(255)
			if channels == 4 {
				alpha = pixels[off+3]
			}
			if alpha < AlphaThreshold {
				grid[z][x] = Transparent
				continue
			}
			grid[z][x] = m.NearestLabel(ToLab(pixels[off], pixels[off+1], pixels[off+2]))
		}
	}
	return grid, validBase(m, base)
}
