package mapart

import "testing"

// solid returns a map-sized buffer filled with one colour.
func solid(channels int, px ...byte) []byte {
	buf := make([]byte, 0, Cells*channels)
	for range Cells {
		buf = append(buf, px[:channels]...)
	}
	return buf
}

// setPixel overwrites cell (x, z) of buf.
func setPixel(buf []byte, channels, x, z int, px ...byte) {
	copy(buf[(z*GridSize+x)*channels:], px[:channels])
}

func TestQuantizeRGB(t *testing.T) {
	grid, base := Quantize(solid(3, 255, 0, 0), 3, "stone", Reference)
	if base != "stone" {
		t.Errorf("base = %q", base)
	}
	for z := range GridSize {
		for x := range GridSize {
			if got := grid.At(x, z); got != "redstone_block" {
				t.Fatalf("cell (%d, %d) = %s", x, z, got)
			}
		}
	}
	if grid.HasTransparency() {
		t.Error("opaque image reported transparency")
	}
}

func TestQuantizeAlphaThreshold(t *testing.T) {
	buf := solid(4, 255, 0, 0, 255)
	// Exact palette colour, but mostly transparent.
	setPixel(buf, 4, 5, 7, 255, 0, 0, 50)
	setPixel(buf, 4, 6, 7, 255, 0, 0, AlphaThreshold-1)
	setPixel(buf, 4, 7, 7, 255, 0, 0, AlphaThreshold)

	grid, _ := Quantize(buf, 4, DefaultBase, Reference)
	tests := []struct {
		x    int
		want string
	}{
		{4, "redstone_block"},
		{5, Transparent},
		{6, Transparent},
		{7, "redstone_block"},
	}
	for _, tt := range tests {
		if got := grid.At(tt.x, 7); got != tt.want {
			t.Errorf("cell (%d, 7) = %s, want %s", tt.x, got, tt.want)
		}
	}
	if !grid.HasTransparency() {
		t.Error("HasTransparency = false")
	}
	counts := grid.Counts()
	if counts[Transparent] != 2 || counts["redstone_block"] != Cells-2 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestQuantizeInvalidBase(t *testing.T) {
	_, base := Quantize(solid(3, 0, 0, 0), 3, "bedrock", Reference)
	if base != DefaultBase {
		t.Errorf("base = %q, want %q", base, DefaultBase)
	}
}

func TestCheckPixels(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		channels int
		ok       bool
	}{
		{"rgb", Cells * 3, 3, true},
		{"rgba", Cells * 4, 4, true},
		{"short", Cells*3 - 1, 3, false},
		{"rgba as rgb", Cells * 4, 3, false},
		{"gray", Cells, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPixels(make([]byte, tt.size), tt.channels)
			if (err == nil) != tt.ok {
				t.Errorf("CheckPixels() error = %v, want ok %v", err, tt.ok)
			}
		})
	}
}

func TestQuantizePanicsOnBadBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Quantize(make([]byte, 10), 3, DefaultBase, Reference)
}
