package utils

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"

	mapart "github.com/AK1089/minecraftMapArt"
)

// SampleOptions controls how an image is brought down to the map grid.
type SampleOptions struct {
	// Resampling kernel for the resize. The zero value is nearest neighbour,
	// which keeps hard pixel-art edges.
	Filter imaging.ResampleFilter
	// Gaussian blur sigma applied after resizing, in cells. 0 disables it.
	Blur float32
	// Percentage adjustments in [-100, 100]. 0 leaves the image alone.
	Contrast   float32
	Saturation float32
}

func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Filter: imaging.NearestNeighbor}
}

// ParseFilter maps a kernel name to an imaging filter.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(name) {
	case "", "nearest":
		return imaging.NearestNeighbor, nil
	case "box":
		return imaging.Box, nil
	case "linear", "bilinear":
		return imaging.Linear, nil
	case "catmullrom", "bicubic":
		return imaging.CatmullRom, nil
	case "lanczos":
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q", name)
}

// Pixels is a map-sized sample ready for mapart.Quantize.
type Pixels struct {
	Data     []byte
	Channels int
	Image    *image.NRGBA
}

// Sample resizes img to the map grid and flattens it. Opaque results use
// three channels per cell, anything with alpha uses four.
func Sample(img image.Image, opt SampleOptions) Pixels {
	resized := imaging.Resize(img, mapart.GridSize, mapart.GridSize, opt.Filter)

	var filters []gift.Filter
	if opt.Contrast != 0 {
		filters = append(filters, gift.Contrast(opt.Contrast))
	}
	if opt.Saturation != 0 {
		filters = append(filters, gift.Saturation(opt.Saturation))
	}
	if opt.Blur > 0 {
		filters = append(filters, gift.GaussianBlur(opt.Blur))
	}
	if len(filters) > 0 {
		g := gift.New(filters...)
		filtered := image.NewNRGBA(g.Bounds(resized.Bounds()))
		g.Draw(filtered, resized)
		resized = filtered
	}
	return Flatten(resized)
}

// Flatten copies a 128x128 image into an interleaved buffer.
func Flatten(img *image.NRGBA) Pixels {
	b := img.Bounds()
	if b.Dx() != mapart.GridSize || b.Dy() != mapart.GridSize || b.Min != (image.Point{}) {
		norm := image.NewNRGBA(image.Rect(0, 0, mapart.GridSize, mapart.GridSize))
		draw.Draw(norm, norm.Bounds(), img, b.Min, draw.Src)
		img = norm
	}
	channels := 4
	if img.Opaque() {
		channels = 3
	}
	data := make([]byte, 0, mapart.Cells*channels)
	for y := range mapart.GridSize {
		row := img.Pix[y*img.Stride : y*img.Stride+mapart.GridSize*4]
		if channels == 4 {
			data = append(data, row...)
			continue
		}
		for x := 0; x < len(row); x += 4 {
			data = append(data, row[x], row[x+1], row[x+2])
		}
	}
	return Pixels{Data: data, Channels: channels, Image: img}
}
