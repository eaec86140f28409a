package mapart

import (
	"image"
	"image/color"
)

type Options struct {
	// Block left out of the per-row placements. Anything the palette does
	// not contain falls back to DefaultBase.
	Base string
	// Name shown to the player when the build finishes.
	Name string
}

func DefaultOptions() Options {
	return Options{
		Base: DefaultBase,
		Name: "unknown_img",
	}
}

// Builder turns one 128x128 pixel buffer into a script. Each Builder owns
// its buffers; the palette may be shared.
type Builder struct {
	Pixels   []byte // interleaved RGB or RGBA, row-major
	Channels int
	Palette  *Palette
	Grid     *Grid
	Base     string
	Script   *Script
}

func NewBuilder(pixels []byte, channels int, palette *Palette) *Builder {
	if palette == nil {
		palette = Reference
	}
	return &Builder{
		Pixels:   pixels,
		Channels: channels,
		Palette:  palette,
	}
}

// Build quantizes the pixels and assembles the script. The pixel buffer must
// pass CheckPixels.
func (b *Builder) Build(opt Options) *Script {
	b.Grid, b.Base = Quantize(b.Pixels, b.Channels, opt.Base, b.Palette)
	b.Script = Assemble(opt.Name, b.Base, b.Grid)
	return b.Script
}

// Convert validates the buffer and runs a Builder over the reference palette.
func Convert(pixels []byte, channels int, opt Options) (*Script, error) {
	if err := CheckPixels(pixels, channels); err != nil {
		return nil, err
	}
	return NewBuilder(pixels, channels, Reference).Build(opt), nil
}

// Preview renders the built grid. See Preview.
func (b *Builder) Preview(scale int) *image.NRGBA {
	if b.Grid == nil {
		return nil
	}
	return Preview(b.Grid, b.Palette, scale)
}

// Preview draws every painted cell as a scale x scale square of its block's
// map colour. Transparent cells, and labels p does not know, stay clear.
func Preview(grid *Grid, p *Palette, scale int) *image.NRGBA {
	if scale <= 0 {
		scale = 1
	}
	size := GridSize * scale
	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	for z := range GridSize {
		for x := range GridSize {
			e, ok := p.Lookup(grid.At(x, z))
			if !ok {
				continue
			}
			c := color.NRGBA{R: e.RGB.R, G: e.RGB.G, B: e.RGB.B, A: 255}
			for dy := range scale {
				for dx := range scale {
					out.SetNRGBA(x*scale+dx, z*scale+dy, c)
				}
			}
		}
	}
	return out
}

// Mask returns a gray layer that is white wherever the grid holds label.
func (b *Builder) Mask(label string) *image.Gray {
	if b.Grid == nil {
		return nil
	}
	layer := image.NewGray(image.Rect(0, 0, GridSize, GridSize))
	for z := range GridSize {
		for x := range GridSize {
			if b.Grid.At(x, z) == label {
				layer.SetGray(x, z, color.Gray{Y: 255})
			}
		}
	}
	return layer
}
