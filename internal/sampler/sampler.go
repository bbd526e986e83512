// Package sampler implements the Pixel Sampler collaborator: it takes
// a decoded image.Image and produces the small PixelMap that the
// blurhash codec actually consumes.
//
// Besides this package, only internal/pipeline, internal/encoder and
// the decode command in cmd touch image.Image directly — the blurhash
// package itself never imports the standard image packages.
package sampler

import (
	"fmt"
	"image"
	"os"

	"github.com/AnyUserName/blurhash-go/blurhash"
	"github.com/disintegration/imaging"
)

const (
	minResolution = 4
	maxResolution = 128
)

// Result is a sampled image ready for blurhash.Encode, plus the alpha
// flag the rest of the pipeline needs for format selection.
type Result struct {
	Pixels   *blurhash.PixelMap
	HasAlpha bool
}

// Sample resizes img so its shorter edge equals resolution (aspect
// preserved, via Lanczos resampling) and copies the result into a
// blurhash.PixelMap. resolution is clamped to [4,128]; a clamp is
// logged to stderr when verbose is set but never fails the call, per
// the codec's "sampling never returns ErrResolutionOutOfRange" design.
func Sample(img image.Image, resolution int, verbose bool) (Result, error) {
	clamped := clampInt(resolution, minResolution, maxResolution)
	if clamped != resolution && verbose {
		fmt.Fprintf(os.Stderr, "[blurctl] warn: sampler resolution %d out of [%d,%d], clamped to %d\n",
			resolution, minResolution, maxResolution, clamped)
	}

	bounds := img.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()
	if origW <= 0 || origH <= 0 {
		return Result{}, fmt.Errorf("sampler: %w: source image has zero extent", blurhash.ErrInvalidDimensions)
	}

	w, h := clamped, clamped
	if origW < origH {
		h = int(float64(clamped) * float64(origH) / float64(origW))
	} else if origH < origW {
		w = int(float64(clamped) * float64(origW) / float64(origH))
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	hasAlpha := HasAlpha(img)

	pm := nrgbaToPixelMap(resized)
	return Result{Pixels: pm, HasAlpha: hasAlpha}, nil
}

// nrgbaToPixelMap copies an *image.NRGBA (imaging.Resize's own output
// type) straight into a blurhash.PixelMap, dropping alpha.
func nrgbaToPixelMap(src *image.NRGBA) *blurhash.PixelMap {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	pm := blurhash.NewPixelMap(w, h)
	for y := 0; y < h; y++ {
		srcRow := src.PixOffset(0, y)
		for x := 0; x < w; x++ {
			i := srcRow + x*4
			pm.Set(x, y, src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		}
	}
	return pm
}

// HasAlpha reports whether any pixel in img has alpha below full
// opacity. Fast paths avoid the generic img.At(...).RGBA() call for
// the two concrete types the pipeline decodes most often.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.NRGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.RGBA:
		for i := 3; i < len(src.Pix); i += 4 {
			if src.Pix[i] < 255 {
				return true
			}
		}
		return false
	case *image.YCbCr, *image.Gray:
		return false
	default:
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if a < 65535 {
					return true
				}
			}
		}
		return false
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
