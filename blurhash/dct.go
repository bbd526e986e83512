package blurhash

import "math"

// project computes the numX*numY cosine-basis DCT components of lin,
// returned row-major (y-major): components[cy*numX+cx]. Cosine tables
// are precomputed per axis and reused across rows/columns, the same
// flat-table strategy the teacher's encodeChan uses for its own
// half-integer-sampled basis.
func project(lin *LinearMap, numX, numY int) []Component {
	w, h := lin.Width, lin.Height

	xCos := make([]float64, numX*w)
	for cx := 0; cx < numX; cx++ {
		s := math.Pi * float64(cx) / float64(w)
		base := cx * w
		for x := 0; x < w; x++ {
			xCos[base+x] = math.Cos(s * float64(x))
		}
	}
	yCos := make([]float64, numY*h)
	for cy := 0; cy < numY; cy++ {
		s := math.Pi * float64(cy) / float64(h)
		base := cy * h
		for y := 0; y < h; y++ {
			yCos[base+y] = math.Cos(s * float64(y))
		}
	}

	components := make([]Component, numX*numY)
	scale := 1 / float64(w*h)

	for cy := 0; cy < numY; cy++ {
		yCosRow := yCos[cy*h : cy*h+h]
		for cx := 0; cx < numX; cx++ {
			norm := 2.0
			if cx == 0 && cy == 0 {
				norm = 1
			}
			xCosRow := xCos[cx*w : cx*w+w]

			var r, g, b float64
			for y := 0; y < h; y++ {
				fy := norm * yCosRow[y]
				rowOff := y * w * 3
				for x := 0; x < w; x++ {
					basis := fy * xCosRow[x]
					off := rowOff + x*3
					r += basis * lin.Pix[off]
					g += basis * lin.Pix[off+1]
					b += basis * lin.Pix[off+2]
				}
			}
			components[cy*numX+cx] = Component{R: r * scale, G: g * scale, B: b * scale}
		}
	}
	return components
}

// reconstruct renders an outW x outH PixelMap from a component grid,
// per the decode-side reconstruction formula (no norm factor: the
// encode-side norm pre-absorbs the standard inverse-transform weight).
func reconstruct(components []Component, numX, numY, outW, outH int) *PixelMap {
	xCos := make([]float64, numX*outW)
	for cx := 0; cx < numX; cx++ {
		s := math.Pi * float64(cx) / float64(outW)
		base := cx * outW
		for x := 0; x < outW; x++ {
			xCos[base+x] = math.Cos(s * float64(x))
		}
	}
	yCos := make([]float64, numY*outH)
	for cy := 0; cy < numY; cy++ {
		s := math.Pi * float64(cy) / float64(outH)
		base := cy * outH
		for y := 0; y < outH; y++ {
			yCos[base+y] = math.Cos(s * float64(y))
		}
	}

	out := NewPixelMap(outW, outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			var r, g, b float64
			for cy := 0; cy < numY; cy++ {
				fy := yCos[cy*outH+y]
				rowBase := cy * numX
				for cx := 0; cx < numX; cx++ {
					c := components[rowBase+cx]
					basis := xCos[cx*outW+x] * fy
					r += c.R * basis
					g += c.G * basis
					b += c.B * basis
				}
			}
			out.Set(x, y, linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
		}
	}
	return out
}
