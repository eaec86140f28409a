package mapart

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Transparent marks a cell that should stay see-through.
	Transparent = "glass"
	// DefaultBase replaces any requested base label the palette does not know.
	DefaultBase = Transparent
)

// RawEntry is one line of the block colour table.
type RawEntry struct {
	Label string
	RGB   color.RGBA
}

func raw(label string, r, g, b uint8) RawEntry {
	return RawEntry{Label: label, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// ReferenceTable lists the blocks a map can be painted with and the colour
// each one shows on a map. Order is significant: ties go to the earlier entry.
var ReferenceTable = []RawEntry{
	raw("grass_block", 127, 178, 56),
	raw("sand", 247, 233, 163),
	raw("diorite", 255, 252, 245),
	raw("redstone_block", 255, 0, 0),
	raw("cobweb", 199, 199, 199),
	raw("big_dripleaf", 0, 124, 0),
	raw("packed_ice", 160, 160, 255),
	raw("iron_block", 167, 167, 167),
	raw("white_concrete", 255, 255, 255),
	raw("clay", 164, 168, 184),
	raw("dirt", 151, 109, 77),
	raw("stone", 112, 112, 112),
	raw("water", 64, 64, 225),
	raw("oak_planks", 143, 119, 72),
	raw("acacia_planks", 216, 127, 51),
	raw("magenta_wool", 178, 76, 216),
	raw("light_blue_wool", 102, 153, 216),
	raw("yellow_wool", 229, 229, 51),
	raw("lime_wool", 127, 204, 25),
	raw("pink_wool", 242, 127, 165),
	raw("light_gray_wool", 153, 153, 153),
	raw("cyan_wool", 76, 127, 153),
	raw("blue_wool", 51, 76, 178),
	raw("dark_oak_planks", 102, 76, 51),
	raw("green_wool", 102, 127, 51),
	raw("red_wool", 153, 51, 51),
	raw("black_wool", 25, 25, 25),
	raw("gold_block", 250, 238, 77),
	raw("diamond_block", 92, 219, 213),
	raw("lapis_block", 74, 128, 255),
	raw("emerald_block", 0, 217, 58),
	raw("podzol", 129, 86, 49),
	raw("netherrack", 112, 2, 0),
	raw("white_terracotta", 209, 177, 161),
	raw("orange_terracotta", 159, 82, 36),
	raw("magenta_terracotta", 149, 87, 108),
	raw("light_blue_terracotta", 112, 108, 138),
	raw("yellow_terracotta", 186, 133, 36),
	raw("lime_terracotta", 103, 117, 53),
	raw("pink_terracotta", 160, 77, 78),
	raw("gray_terracotta", 57, 41, 35),
	raw("light_gray_terracotta", 135, 107, 98),
	raw("cyan_terracotta", 87, 92, 92),
	raw("purple_terracotta", 122, 73, 88),
	raw("blue_terracotta", 76, 62, 92),
	raw("brown_terracotta", 76, 50, 35),
	raw("green_terracotta", 76, 82, 42),
	raw("red_terracotta", 142, 60, 46),
	raw("black_terracotta", 37, 22, 16),
	raw("crimson_nylium", 189, 48, 49),
	raw("warped_nylium", 22, 126, 134),
	raw("deepslate", 100, 100, 100),
	raw("raw_iron_block", 216, 175, 14),
}

// Reference is the palette built from ReferenceTable. It is read-only and
// safe to share between goroutines.
var Reference = NewPalette(ReferenceTable)

// Matcher finds the palette label closest to a colour. Palette implements it
// with a linear scan; a spatial index can stand in for larger palettes.
type Matcher interface {
	NearestLabel(Lab) string
	Contains(label string) bool
}

// Entry is a palette block with its map colour in both spaces.
type Entry struct {
	Label string
	RGB   color.RGBA
	Lab   Lab
}

// Color returns the entry's map colour.
func (e Entry) Color() colorful.Color {
	c, _ := colorful.MakeColor(e.RGB)
	return c
}

// Hex returns the map colour as #rrggbb.
func (e Entry) Hex() string {
	return e.Color().Hex()
}

type Palette struct {
	entries []Entry
	index   map[string]int
}

// NewPalette converts every raw entry to Lab once. Duplicate labels keep
// their first position. It panics on an empty table.
func NewPalette(table []RawEntry) *Palette {
	if len(table) == 0 {
		panic("mapart: empty palette table")
	}
	p := &Palette{
		entries: make([]Entry, 0, len(table)),
		index:   make(map[string]int, len(table)),
	}
	for _, r := range table {
		if _, dup := p.index[r.Label]; dup {
			continue
		}
		p.index[r.Label] = len(p.entries)
		p.entries = append(p.entries, Entry{
			Label: r.Label,
			RGB:   r.RGB,
			Lab:   ToLab(r.RGB.R, r.RGB.G, r.RGB.B),
		})
	}
	return p
}

func (p *Palette) Len() int { return len(p.entries) }

// Entries returns a copy of the palette in declaration order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Palette) Contains(label string) bool {
	_, ok := p.index[label]
	return ok
}

func (p *Palette) Lookup(label string) (Entry, bool) {
	i, ok := p.index[label]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Nearest returns the closest entry and its squared distance. Only a
// strictly smaller distance replaces the current best, so equal distances
// resolve to the entry declared first.
func (p *Palette) Nearest(c Lab) (Entry, float64) {
	best := 0
	bestDist := math.Inf(1)
	for i := range p.entries {
		d := c.DistanceSq(p.entries[i].Lab)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return p.entries[best], bestDist
}

func (p *Palette) NearestLabel(c Lab) string {
	e, _ := p.Nearest(c)
	return e.Label
}

// NearestRGB is shorthand for NearestLabel(ToLab(c)).
func (p *Palette) NearestRGB(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return p.NearestLabel(ToLab(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// ValidBase returns base if it is a palette label, DefaultBase otherwise.
func (p *Palette) ValidBase(base string) string {
	return validBase(p, base)
}

func validBase(m Matcher, base string) string {
	if m.Contains(base) {
		return base
	}
	return DefaultBase
}
