package blurhash

import "math"

// gcd is the standard Euclidean GCD on non-negative integers, with
// gcd(n, 0) = n.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ReduceAspect reduces w:h to coprime form.
func ReduceAspect(w, h int) (int, int) {
	d := gcd(w, h)
	if d == 0 {
		return w, h
	}
	return w / d, h / d
}

// OrientationOf classifies a w x h rectangle.
func OrientationOf(w, h int) Orientation {
	switch {
	case w > h:
		return Landscape
	case w < h:
		return Portrait
	default:
		return Square
	}
}

// inferComponents chooses (X, Y) component counts from a pixel map's
// aspect ratio, used when Encode isn't given an explicit or default
// component choice. The "+1" after rounding looks odd next to simpler
// aspect heuristics but is preserved verbatim (per the spec's own
// open-question resolution) for hash compatibility with the wider
// BlurHash ecosystem.
func inferComponents(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return 4, 4
	}

	short := minInt(w, h)
	long := maxInt(w, h)
	o := OrientationOf(w, h)

	var ratio float64
	if o == Portrait {
		ratio = roundDecimals(float64(short)/float64(long), 3)
	} else {
		ratio = roundDecimals(float64(long)/float64(short), 3)
	}
	if ratio == 0 {
		ratio = 1
	}

	// Both branches make ratio equal to w/h, so xc counts along the width
	// and yc along the height: the longer edge gets more components.
	xc := clampInt(int(math.Round(4*ratio))+1, 1, 9)
	yc := clampInt(int(math.Round(4/ratio))+1, 1, 9)

	return xc, yc
}

func roundDecimals(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
