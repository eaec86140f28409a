package mapart

import "math"

// Lab is a point in the perceptual space used for palette matching.
// L is offset by +16 compared to CIE L*a*b*; only relative distances matter.
type Lab struct {
	L, A, B float64
}

// sRGB -> XYZ (D65).
var rgbToXYZ = [3][3]float64{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// Compressed XYZ -> L, a, b.
var xyzToLab = [3][3]float64{
	{0, 116, 0},
	{500, -500, 0},
	{0, 200, -200},
}

// Reference white, D65 illuminant with 2° observer.
var whitePoint = [3]float64{95.047, 100.000, 108.883}

// ToLab converts an 8-bit sRGB triplet to Lab.
//
// The thresholds and matrices are fixed; changing any of them changes which
// block a colour maps to.
func ToLab(r, g, b uint8) Lab {
	v := [3]float64{
		expand(float64(r) / 255),
		expand(float64(g) / 255),
		expand(float64(b) / 255),
	}
	xyz := mulVec(&rgbToXYZ, v)
	for i := range xyz {
		xyz[i] = compress(xyz[i] / whitePoint[i])
	}
	lab := mulVec(&xyzToLab, xyz)
	return Lab{L: lab[0], A: lab[1], B: lab[2]}
}

func expand(v float64) float64 {
	if v > 0.04045 {
		return 100 * math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 0.1292
}

func compress(v float64) float64 {
	if v > 0.008856 {
		return math.Pow(v, 1.0/3)
	}
	return float64(7.787*v) + 16.0/116
}

// mulVec sums each row left to right from zero. The explicit float64
// conversions stop the compiler from fusing multiply-adds.
func mulVec(m *[3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		sum := 0.0
		for j := range v {
			sum += float64(m[i][j] * v[j])
		}
		out[i] = sum
	}
	return out
}

// DistanceSq returns the squared Euclidean distance between two Lab points.
func (c Lab) DistanceSq(o Lab) float64 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return float64(dl*dl) + float64(da*da) + float64(db*db)
}
