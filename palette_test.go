package mapart

import (
	"image/color"
	"testing"
)

func TestReferenceMatchesItself(t *testing.T) {
	for _, e := range Reference.Entries() {
		got, dist := Reference.Nearest(ToLab(e.RGB.R, e.RGB.G, e.RGB.B))
		if got.Label != e.Label || dist != 0 {
			t.Errorf("%s matched %s at %v", e.Label, got.Label, dist)
		}
	}
}

func TestReferenceTable(t *testing.T) {
	if Reference.Len() != len(ReferenceTable) {
		t.Fatalf("Len = %d, table has %d entries", Reference.Len(), len(ReferenceTable))
	}
	if Reference.Contains(Transparent) {
		t.Errorf("%s must not be paintable", Transparent)
	}
	e, ok := Reference.Lookup("redstone_block")
	if !ok || e.RGB != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("redstone_block = %+v, %v", e, ok)
	}
	if e.Hex() != "#ff0000" {
		t.Errorf("Hex = %s", e.Hex())
	}
}

func TestNearestPureRed(t *testing.T) {
	if got := Reference.NearestLabel(ToLab(255, 0, 0)); got != "redstone_block" {
		t.Errorf("pure red -> %s", got)
	}
	if got := Reference.NearestRGB(color.RGBA{R: 255, A: 255}); got != "redstone_block" {
		t.Errorf("NearestRGB pure red -> %s", got)
	}
}

func TestNearestTieGoesToFirst(t *testing.T) {
	p := NewPalette([]RawEntry{
		raw("first", 10, 20, 30),
		raw("second", 10, 20, 30),
		raw("far", 250, 250, 250),
	})
	if got := p.NearestLabel(ToLab(10, 20, 30)); got != "first" {
		t.Errorf("tie resolved to %s", got)
	}
	if got := p.NearestLabel(ToLab(12, 22, 31)); got != "first" {
		t.Errorf("near tie resolved to %s", got)
	}
}

func TestNewPaletteDuplicateLabels(t *testing.T) {
	p := NewPalette([]RawEntry{
		raw("a", 1, 1, 1),
		raw("a", 200, 200, 200),
		raw("b", 100, 100, 100),
	})
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if e, _ := p.Lookup("a"); e.RGB.R != 1 {
		t.Errorf("duplicate replaced the first entry: %+v", e)
	}
}

func TestNewPaletteEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewPalette(nil)
}

func TestValidBase(t *testing.T) {
	tests := []struct {
		base, want string
	}{
		{"stone", "stone"},
		{"white_concrete", "white_concrete"},
		{"glass", DefaultBase},
		{"", DefaultBase},
		{"not_a_block", DefaultBase},
	}
	for _, tt := range tests {
		if got := Reference.ValidBase(tt.base); got != tt.want {
			t.Errorf("ValidBase(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
