package blurhash

import "fmt"

// Source is an Encode input: either a PixelMap (sRGB bytes) or a
// LinearMap (pre-linearised floats, e.g. from a raw sensor pipeline).
// The source's concrete type replaces the reference implementation's
// source_is_linear boolean flag — a LinearMap is unambiguously linear,
// so there is nothing left to flag.
type Source interface {
	dims() (int, int)
}

func (m *PixelMap) dims() (int, int) { return m.Width, m.Height }

func (m *LinearMap) dims() (int, int) { return m.Width, m.Height }

// Encode produces a BlurHash string for src. Component selection and
// the optional <W:H> size prefix are controlled by opts.
//
// Encode never touches image.Image or any on-disk format: resampling a
// full-resolution image down to a PixelMap is the Pixel Sampler
// collaborator's job (internal/sampler in this repository), not the
// codec's.
func Encode(src Source, opts EncodeOptions) (string, error) {
	switch s := src.(type) {
	case *PixelMap:
		return encodeFromPixels(s, opts)
	case *LinearMap:
		return encodeFromLinear(s, opts)
	default:
		return "", fmt.Errorf("blurhash: encode: %w: unsupported source type %T", ErrInvalidLinearInput, src)
	}
}

// DecodeToPixels passes a PixelMap straight through, or decodes a hash
// string using resolution as the fallback square size when the hash
// carries no <W:H> size prefix (a present prefix always wins).
func DecodeToPixels(source any, resolution int) (*PixelMap, error) {
	switch v := source.(type) {
	case *PixelMap:
		return v, nil
	case string:
		return Decode(v, DecodeOptions{DefaultSize: resolution})
	default:
		return nil, fmt.Errorf("blurhash: decode_to_pixels: %w: unsupported input type %T", ErrInvalidLinearInput, source)
	}
}
