// Package noise provides deterministic 2D coherent noise and fractal
// combinators for driving per-hex values.
package noise

import "math"

// Func is any 2D scalar field.
type Func func(x, y float64) float64

// reference is Ken Perlin's fixed permutation of 0..255.
var reference = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140,
	36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148, 247, 120,
	234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71,
	134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133,
	230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54, 65, 25, 63, 161,
	1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196, 135, 130,
	116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250,
	124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227,
	47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213, 119, 248, 152, 2, 44,
	154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9, 129, 22, 39, 253, 19, 98,
	108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228, 251, 34,
	242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14,
	239, 107, 49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121,
	50, 45, 127, 4, 150, 254, 138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243,
	141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// perm is reference repeated twice so lookups of p[X+1] and p[A+1] never wrap.
// Built once at init and read-only afterwards.
var perm = buildPerm(reference)

func buildPerm(src [256]uint8) [512]uint8 {
	var p [512]uint8
	for i := 0; i < 256; i++ {
		p[i] = src[i]
		p[i+256] = src[i]
	}
	return p
}

// Perlin2 returns classic 2D gradient noise at (x, y), roughly in [-1, 1].
// Output depends only on the inputs; it is 0 at every integer lattice point.
func Perlin2(x, y float64) float64 {
	return perlin2(&perm, x, y)
}

func perlin2(p *[512]uint8, x, y float64) float64 {
	xf, yf := math.Floor(x), math.Floor(y)
	xi, yi := int(xf)&255, int(yf)&255
	x -= xf
	y -= yf
	u, v := fade(x), fade(y)

	a := int(p[xi]) + yi
	b := int(p[xi+1]) + yi
	return lerp(v,
		lerp(u, grad2(p[a], x, y), grad2(p[b], x-1, y)),
		lerp(u, grad2(p[a+1], x, y-1), grad2(p[b+1], x-1, y-1)),
	)
}

// grad2 picks ±x or ±y from the two low bits of the hash.
func grad2(hash uint8, x, y float64) float64 {
	v := x
	if hash&1 != 0 {
		v = y
	}
	if hash&2 != 0 {
		return -v
	}
	return v
}

// fade is the quintic 6t⁵-15t⁴+10t³ easing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
