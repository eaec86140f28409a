package utils

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	mapart "github.com/AK1089/minecraftMapArt"
)

// AutoBase asks ResolveBase to pick the background block from the image.
const AutoBase = "auto"

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod accepts the names returned by PaletteMethod.String.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch strings.ToLower(s) {
	case "", "dominantcolor", "dominant":
		return PaletteMethodDominantColor, nil
	case "kmeans":
		return PaletteMethodKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

// Swatch is a colour found in an image with its share of the pixels.
type Swatch struct {
	Color  colorful.Color
	Weight float64
}

// SortSwatchesByBrightness orders swatches from darkest to brightest.
func SortSwatchesByBrightness(swatches []Swatch) {
	slices.SortFunc(swatches, func(a, b Swatch) int {
		ya, yb := luminance(a.Color), luminance(b.Color)
		if ya < yb {
			return -1
		}
		if ya > yb {
			return 1
		}
		return 0
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// DominantSwatches returns up to k colours weighted by how much of the image
// they cover, heaviest first.
func DominantSwatches(img image.Image, k int) []Swatch {
	if k <= 0 {
		return nil
	}
	found := dominantcolor.FindWeight(img, max(24, k*8))
	if len(found) == 0 {
		// Fully transparent input: fall back to mid grey so callers still get a colour.
		found = append(found, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}
	swatches := make([]Swatch, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		swatches = append(swatches, Swatch{Color: col.Clamped(), Weight: max(c.Weight, 1e-6)})
	}
	return selectDiverse(swatches, k)
}

// selectDiverse keeps the heaviest swatch, then greedily adds the swatch
// furthest (in Lab) from everything kept so far, favouring heavier ones.
// The result is ordered by weight.
func selectDiverse(cands []Swatch, k int) []Swatch {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))
	labs := make([][3]float64, len(cands))
	maxW := 0.0
	seed := 0
	for i, c := range cands {
		l, a, b := c.Color.Lab()
		labs[i] = [3]float64{l, a, b}
		if c.Weight > maxW {
			maxW = c.Weight
			seed = i
		}
	}

	picked := []int{seed}
	taken := make([]bool, len(cands))
	taken[seed] = true
	for len(picked) < k {
		bestIdx, bestScore := -1, -1.0
		for i := range cands {
			if taken[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range picked {
				d0 := labs[i][0] - labs[s][0]
				d1 := labs[i][1] - labs[s][1]
				d2 := labs[i][2] - labs[s][2]
				minD2 = min(minD2, d0*d0+d1*d1+d2*d2)
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(cands[i].Weight/maxW))
			if score > bestScore {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx < 0 {
			break
		}
		taken[bestIdx] = true
		picked = append(picked, bestIdx)
	}

	out := make([]Swatch, 0, len(picked))
	for _, i := range picked {
		out = append(out, cands[i])
	}
	slices.SortStableFunc(out, func(a, b Swatch) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})
	return out
}

// KMeansSwatches clusters opaque pixels and returns up to k cluster centres
// weighted by population, heaviest first.
func KMeansSwatches(img image.Image, k int) []Swatch {
	if k <= 0 {
		return nil
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample so large inputs stay fast.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < mapart.AlphaThreshold {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(c.R) / 255.0,
				float64(c.G) / 255.0,
				float64(c.B) / 255.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	cc, err := kmeans.New().Partition(dataset, min(max(k*4, k+2), len(dataset)))
	if err != nil || len(cc) == 0 {
		return nil
	}

	swatches := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		swatches = append(swatches, Swatch{Color: col, Weight: float64(len(c.Observations))})
	}
	return selectDiverse(swatches, k)
}

// ExtractSwatches runs the chosen method, falling back to dominantcolor when
// kmeans finds nothing.
func ExtractSwatches(img image.Image, k int, method PaletteMethod) []Swatch {
	switch method {
	case PaletteMethodKMeans:
		s := KMeansSwatches(img, k)
		if len(s) != 0 {
			return s
		}
		log.Println("palette warning: kmeans returned no clusters, falling back to dominantcolor")
		return DominantSwatches(img, k)
	default:
		return DominantSwatches(img, k)
	}
}

// MatchSwatches maps each swatch to its nearest block.
func MatchSwatches(swatches []Swatch, p *mapart.Palette) []string {
	out := make([]string, len(swatches))
	for i, s := range swatches {
		r, g, b := s.Color.RGB255()
		out[i] = p.NearestLabel(mapart.ToLab(r, g, b))
	}
	return out
}

// ResolveBase returns base unchanged unless it is AutoBase, in which case the
// block nearest the image's heaviest colour is used.
func ResolveBase(base string, img image.Image, p *mapart.Palette, method PaletteMethod) string {
	if base != AutoBase {
		return base
	}
	swatches := ExtractSwatches(img, 1, method)
	if len(swatches) == 0 {
		return mapart.DefaultBase
	}
	return MatchSwatches(swatches[:1], p)[0]
}
