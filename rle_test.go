package mapart

import (
	"strings"
	"testing"
)

// makeRow builds a row from "label:count" pairs.
func makeRow(t *testing.T, pairs ...any) []string {
	t.Helper()
	var row []string
	for i := 0; i < len(pairs); i += 2 {
		label, n := pairs[i].(string), pairs[i+1].(int)
		for range n {
			row = append(row, label)
		}
	}
	if len(row) != GridSize {
		t.Fatalf("row has %d cells", len(row))
	}
	return row
}

func TestRunsCoverRow(t *testing.T) {
	rows := [][]string{
		makeRow(t, "stone", 128),
		makeRow(t, "stone", 1, "dirt", 126, "stone", 1),
		makeRow(t, "a", 3, "b", 1, "a", 60, "glass", 64),
	}
	for i, row := range rows {
		runs := Runs(i, row)
		total, next := 0, 0
		for _, r := range runs {
			if r.Start != next {
				t.Errorf("row %d: run starts at %d, want %d", i, r.Start, next)
			}
			if r.Length < 1 {
				t.Errorf("row %d: empty run %+v", i, r)
			}
			total += r.Length
			next = r.End() + 1
		}
		if total != GridSize {
			t.Errorf("row %d: runs cover %d cells", i, total)
		}
	}
}

func TestRunsAreMaximal(t *testing.T) {
	runs := Runs(0, makeRow(t, "a", 3, "b", 1, "a", 124))
	if len(runs) != 3 {
		t.Fatalf("got %d runs: %+v", len(runs), runs)
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Label == runs[i-1].Label {
			t.Errorf("adjacent runs share label %s", runs[i].Label)
		}
	}
}

func TestEncodeRowPointAndRange(t *testing.T) {
	row := makeRow(t, "stone", 10, "dirt", 1, "stone", 117)
	ops, transparent := EncodeRow(3, row, "sand")
	if transparent {
		t.Error("unexpected transparency")
	}
	want := []string{
		"@bypass /fill -3392 140 -1597 -3383 140 -1597 stone",
		"@bypass /setblock -3382 140 -1597 dirt",
		"@bypass /fill -3381 140 -1597 -3265 140 -1597 stone",
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if got := op.String(); got != want[i] {
			t.Errorf("op %d = %q, want %q", i, got, want[i])
		}
	}
	if !ops[1].IsPoint() || ops[0].IsPoint() {
		t.Error("IsPoint mismatch")
	}
}

func TestEncodeRowSkipsBase(t *testing.T) {
	row := makeRow(t, "stone", 64, "dirt", 64)
	ops, _ := EncodeRow(0, row, "stone")
	if len(ops) != 1 || ops[0].Label != "dirt" {
		t.Fatalf("ops = %+v", ops)
	}
	if start, end := ops[0].Columns(); start != 64 || end != 127 {
		t.Errorf("Columns = %d, %d", start, end)
	}
}

func TestEncodeRowTransparency(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		base string
		want bool
	}{
		{"none", makeRow(t, "stone", 128), "glass", false},
		{"leading", makeRow(t, "glass", 5, "stone", 123), "stone", true},
		{"trailing", makeRow(t, "stone", 127, "glass", 1), "stone", true},
		{"skipped as base", makeRow(t, "stone", 64, "glass", 64), "glass", true},
		{"whole row", makeRow(t, "glass", 128), "glass", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := EncodeRow(0, tt.row, tt.base); got != tt.want {
				t.Errorf("transparent = %v, want %v", got, tt.want)
			}
		})
	}
}

// Overlaying the ops on a row of base must give back the input row.
func TestEncodeRowReconstructs(t *testing.T) {
	labels := []string{"stone", "dirt", "glass", "sand"}
	for seed := range 20 {
		row := make([]string, GridSize)
		state := uint32(seed*7919 + 1)
		for x := range row {
			state = state*1664525 + 1013904223
			if x > 0 && state>>28 < 10 {
				row[x] = row[x-1]
				continue
			}
			row[x] = labels[(state>>16)%uint32(len(labels))]
		}
		for _, base := range labels {
			ops, _ := EncodeRow(9, row, base)
			got := make([]string, GridSize)
			for x := range got {
				got[x] = base
			}
			last := -1
			for _, op := range ops {
				start, end := op.Columns()
				if start <= last {
					t.Fatalf("ops out of order: %d after %d", start, last)
				}
				if op.From.Z != OriginZ+9 || op.From.Y != OriginY || op.To.Z != op.From.Z {
					t.Fatalf("op off the row: %+v", op)
				}
				if op.IsPoint() != (start == end) {
					t.Fatalf("op %s has span %d..%d", op, start, end)
				}
				for x := start; x <= end; x++ {
					got[x] = op.Label
				}
				last = end
			}
			if strings.Join(got, ",") != strings.Join(row, ",") {
				t.Fatalf("seed %d base %s: reconstruction differs", seed, base)
			}
		}
	}
}
