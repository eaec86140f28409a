package mapart

import "fmt"

// Run is a maximal stretch of equal labels within one grid row.
type Run struct {
	Z      int // row
	Start  int // first column
	Length int
	Label  string
}

// End returns the last column covered by the run.
func (r Run) End() int { return r.Start + r.Length - 1 }

// Op is a single placement: a setblock when From == To, otherwise a fill
// along X. Coordinates are absolute world coordinates.
type Op struct {
	From, To Point
	Label    string
}

type Point struct {
	X, Y, Z int
}

func (p Point) String() string {
	return fmt.Sprintf("%d %d %d", p.X, p.Y, p.Z)
}

func (o Op) IsPoint() bool { return o.From == o.To }

// String renders the op as a script line without the trailing newline.
func (o Op) String() string {
	if o.IsPoint() {
		return fmt.Sprintf("@bypass /setblock %s %s", o.From, o.Label)
	}
	return fmt.Sprintf("@bypass /fill %s %s %s", o.From, o.To, o.Label)
}

// Columns returns the grid columns the op covers.
func (o Op) Columns() (start, end int) {
	return o.From.X - OriginX, o.To.X - OriginX
}

// opForRun places a run on the paint layer.
func opForRun(r Run) Op {
	z := OriginZ + r.Z
	return Op{
		From:  Point{X: OriginX + r.Start, Y: OriginY, Z: z},
		To:    Point{X: OriginX + r.End(), Y: OriginY, Z: z},
		Label: r.Label,
	}
}

// Runs splits row z into maximal runs covering every column exactly once.
func Runs(z int, row []string) []Run {
	var runs []Run
	scanRow(row, func(start, length int, label string) {
		runs = append(runs, Run{Z: z, Start: start, Length: length, Label: label})
	})
	return runs
}

// EncodeRow returns the placements for row z, skipping runs of base, and
// whether any run in the row is Transparent. Ops come out in ascending
// column order.
func EncodeRow(z int, row []string, base string) (ops []Op, transparent bool) {
	scanRow(row, func(start, length int, label string) {
		if label == Transparent {
			transparent = true
		}
		if label == base {
			return
		}
		ops = append(ops, opForRun(Run{Z: z, Start: start, Length: length, Label: label}))
	})
	return ops, transparent
}

// scanRow walks the row once, calling flush for each run as soon as it ends.
// The end of the row acts as a sentinel that never equals a label, so the
// last run is always flushed.
func scanRow(row []string, flush func(start, length int, label string)) {
	inRun := false
	var label string
	var start int
	for x := 0; x <= len(row); x++ {
		atEnd := x == len(row)
		if inRun && !atEnd && row[x] == label {
			continue
		}
		if inRun {
			flush(start, x-start, label)
		}
		if atEnd {
			return
		}
		inRun = true
		label = row[x]
		start = x
	}
}
