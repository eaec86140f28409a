package mapart

import (
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Report summarises how well a built grid matches its source pixels.
type Report struct {
	Painted     int // cells matched to a block
	Transparent int
	// Perceptual error of painted cells (Lab distance to the chosen block).
	MeanError   float64
	StdDevError float64
	MaxError    float64
	MedianError float64
	Ops         int
	Blocks      []BlockCount // most used first
}

type BlockCount struct {
	Label string
	Cells int
}

// Report measures the last Build. It returns nil before Build has run.
func (b *Builder) Report() *Report {
	if b.Grid == nil || b.Script == nil {
		return nil
	}
	r := &Report{Ops: b.Script.Ops}
	errs := make([]float64, 0, Cells)
	for z := range GridSize {
		for x := range GridSize {
			label := b.Grid.At(x, z)
			if label == Transparent {
				r.Transparent++
				continue
			}
			e, ok := b.Palette.Lookup(label)
			if !ok {
				continue
			}
			off := (z*GridSize + x) * b.Channels
			lab := ToLab(b.Pixels[off], b.Pixels[off+1], b.Pixels[off+2])
			errs = append(errs, math.Sqrt(lab.DistanceSq(e.Lab)))
		}
	}
	r.Painted = len(errs)
	if len(errs) > 0 {
		r.MeanError, r.StdDevError = stat.MeanStdDev(errs, nil)
		if len(errs) == 1 {
			r.StdDevError = 0
		}
		r.MaxError = floats.Max(errs)
		slices.Sort(errs)
		r.MedianError = stat.Quantile(0.5, stat.Empirical, errs, nil)
	}
	for label, n := range b.Grid.Counts() {
		r.Blocks = append(r.Blocks, BlockCount{Label: label, Cells: n})
	}
	slices.SortFunc(r.Blocks, func(x, y BlockCount) int {
		if x.Cells != y.Cells {
			return y.Cells - x.Cells
		}
		return strings.Compare(x.Label, y.Label)
	})
	return r
}

// Separation returns the symmetric matrix of Lab distances between every
// pair of palette entries, in palette order.
func (p *Palette) Separation() *mat.SymDense {
	n := len(p.entries)
	m := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, math.Sqrt(p.entries[i].Lab.DistanceSq(p.entries[j].Lab)))
		}
	}
	return m
}

// Neighbor pairs a palette entry with the entry closest to it.
type Neighbor struct {
	Label    string
	Closest  string
	Distance float64
}

// Neighbors lists, for every entry, the other entry that is hardest to tell
// apart from it on a map.
func (p *Palette) Neighbors() []Neighbor {
	sep := p.Separation()
	n, _ := sep.Dims()
	out := make([]Neighbor, 0, n)
	for i := range n {
		best, bestDist := -1, math.Inf(1)
		for j := range n {
			if i == j {
				continue
			}
			if d := sep.At(i, j); d < bestDist {
				best, bestDist = j, d
			}
		}
		nb := Neighbor{Label: p.entries[i].Label, Distance: bestDist}
		if best >= 0 {
			nb.Closest = p.entries[best].Label
		}
		out = append(out, nb)
	}
	return out
}
