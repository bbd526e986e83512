package blurhash

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ComponentMode selects how Encode picks the DCT component grid.
type ComponentMode int

const (
	// ComponentsInfer derives (X, Y) from the source's aspect ratio (§4.6).
	ComponentsInfer ComponentMode = iota
	// ComponentsExplicit uses the caller-supplied X, Y, each clamped to [1,9].
	ComponentsExplicit
	// ComponentsDefault falls back to BlurHash's historical default of 4x4.
	ComponentsDefault
)

// ComponentSpec is the explicit tagged choice for component-count
// selection called out in the design notes (replacing the source's
// AUTO/INFER sentinel values with {Infer, Explicit(x,y), Default}).
type ComponentSpec struct {
	Mode ComponentMode
	X, Y int
}

// Infer derives (X, Y) from the source's aspect ratio.
func Infer() ComponentSpec { return ComponentSpec{Mode: ComponentsInfer} }

// Explicit pins (X, Y) to caller-supplied values, each clamped to [1,9].
func Explicit(x, y int) ComponentSpec {
	return ComponentSpec{Mode: ComponentsExplicit, X: x, Y: y}
}

// DefaultGrid is the BlurHash default of 4x4 components.
func DefaultGrid() ComponentSpec { return ComponentSpec{Mode: ComponentsDefault} }

func (c ComponentSpec) resolve(w, h int) (int, int) {
	switch c.Mode {
	case ComponentsExplicit:
		return clampInt(c.X, 1, 9), clampInt(c.Y, 1, 9)
	case ComponentsDefault:
		return 4, 4
	default:
		return inferComponents(w, h)
	}
}

// EncodeOptions controls Encode's component selection and size prefix.
type EncodeOptions struct {
	Components ComponentSpec
	PrefixSize bool
}

func linearizeDirect(src *PixelMap) *LinearMap {
	out := NewLinearMap(src.Width, src.Height)
	for i := 0; i < len(src.Pix); i += 3 {
		out.Pix[i] = linearFromByte(src.Pix[i])
		out.Pix[i+1] = linearFromByte(src.Pix[i+1])
		out.Pix[i+2] = linearFromByte(src.Pix[i+2])
	}
	return out
}

func encodeFromPixels(src *PixelMap, opts EncodeOptions) (string, error) {
	if err := src.validate(); err != nil {
		return "", fmt.Errorf("blurhash: encode: %w", err)
	}
	return encodeComponents(linearizeDirect(src), src.Width, src.Height, opts)
}

func encodeFromLinear(src *LinearMap, opts EncodeOptions) (string, error) {
	if err := src.validate(); err != nil {
		return "", fmt.Errorf("blurhash: encode: %w", err)
	}
	return encodeComponents(src, src.Width, src.Height, opts)
}

// encodeComponents implements the hash assembler's encode side (spec §4.5).
func encodeComponents(lin *LinearMap, w, h int, opts EncodeOptions) (string, error) {
	numX, numY := opts.Components.resolve(w, h)
	components := project(lin, numX, numY)

	dc := components[0]
	dcPacked := int(linearToSRGB(dc.R))<<16 | int(linearToSRGB(dc.G))<<8 | int(linearToSRGB(dc.B))

	ac := components[1:]
	maxAC := 0.0
	for _, c := range ac {
		maxAC = math.Max(maxAC, math.Max(math.Abs(c.R), math.Max(math.Abs(c.G), math.Abs(c.B))))
	}
	quantMaxAC := clampInt(int(math.Floor(maxAC*166-0.5)), 0, 82)
	acnf := float64(quantMaxAC+1) / 166

	header := (numX - 1) + (numY-1)*9

	var b strings.Builder
	parts := []struct {
		value, length int
	}{
		{header, 1},
		{quantMaxAC, 1},
		{dcPacked, 4},
	}
	for _, p := range parts {
		s, err := encodeBase83(p.value, p.length)
		if err != nil {
			return "", fmt.Errorf("blurhash: encode: %w", err)
		}
		b.WriteString(s)
	}

	for _, c := range ac {
		qr := quantizeAC(c.R / acnf)
		qg := quantizeAC(c.G / acnf)
		qb := quantizeAC(c.B / acnf)
		s, err := encodeBase83(qr*361+qg*19+qb, 2)
		if err != nil {
			return "", fmt.Errorf("blurhash: encode: %w", err)
		}
		b.WriteString(s)
	}

	result := b.String()
	if opts.PrefixSize {
		result = fmt.Sprintf("<%d:%d>%s", w, h, result)
	}
	return result, nil
}

// DecodeOptions controls Decode's output dimensions and AC contrast.
type DecodeOptions struct {
	// Width, Height: 0 means "infer" (from the hash's size prefix, or
	// from the other dimension plus the prefix's aspect). If the hash
	// carries no prefix and neither is supplied, DefaultSize is used.
	Width, Height int
	// Punch is a contrast multiplier applied to AC components; 0 means
	// the spec default of 1.0.
	Punch float64
	// DefaultSize is the square fallback used when the hash has no
	// size prefix and the caller supplied neither Width nor Height.
	// 0 means 32.
	DefaultSize int
}

// Decode reconstructs an approximate PixelMap from a BlurHash string,
// per spec §4.5's decode side.
func Decode(hash string, opts DecodeOptions) (*PixelMap, error) {
	body := hash
	var prefixW, prefixH int
	hasPrefix := false

	if strings.HasPrefix(hash, "<") {
		end := strings.IndexByte(hash, '>')
		if end < 0 {
			return nil, fmt.Errorf("blurhash: decode: %w: unterminated size prefix", ErrInvalidHashLength)
		}
		w, h, err := parsePrefix(hash[1:end])
		if err != nil {
			return nil, fmt.Errorf("blurhash: decode: %w", err)
		}
		prefixW, prefixH, hasPrefix = w, h, true
		body = hash[end+1:]
	}

	if len(body) < 6 {
		return nil, fmt.Errorf("blurhash: decode: %w: body length %d < 6", ErrInvalidHashLength, len(body))
	}

	header, err := decodeBase83(body[0:1])
	if err != nil {
		return nil, fmt.Errorf("blurhash: decode: %w", err)
	}
	numY := header/9 + 1
	numX := header%9 + 1

	if want := 4 + 2*numX*numY; len(body) != want {
		return nil, fmt.Errorf("blurhash: decode: %w: body length %d, want %d for %dx%d components",
			ErrInvalidHashLength, len(body), want, numX, numY)
	}

	quantMaxAC, err := decodeBase83(body[1:2])
	if err != nil {
		return nil, fmt.Errorf("blurhash: decode: %w", err)
	}
	maxValue := float64(quantMaxAC+1) / 166

	dcPacked, err := decodeBase83(body[2:6])
	if err != nil {
		return nil, fmt.Errorf("blurhash: decode: %w", err)
	}

	punch := opts.Punch
	if punch <= 0 {
		punch = 1
	}

	components := make([]Component, numX*numY)
	components[0] = Component{
		R: linearFromByte(uint8(dcPacked >> 16)),
		G: linearFromByte(uint8(dcPacked >> 8)),
		B: linearFromByte(uint8(dcPacked)),
	}
	for i := 1; i < numX*numY; i++ {
		offset := 6 + (i-1)*2
		v, err := decodeBase83(body[offset : offset+2])
		if err != nil {
			return nil, fmt.Errorf("blurhash: decode: %w", err)
		}
		qr, qg, qb := v/361, (v/19)%19, v%19
		components[i] = Component{
			R: dequantizeAC(qr) * maxValue * punch,
			G: dequantizeAC(qg) * maxValue * punch,
			B: dequantizeAC(qb) * maxValue * punch,
		}
	}

	outW, outH := resolveDecodeDims(opts, hasPrefix, prefixW, prefixH)
	return reconstruct(components, numX, numY, outW, outH), nil
}

func parsePrefix(prefix string) (int, int, error) {
	parts := strings.SplitN(prefix, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed size prefix %q", ErrInvalidHashLength, prefix)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w: bad prefix width %q", ErrInvalidHashLength, parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w: bad prefix height %q", ErrInvalidHashLength, parts[1])
	}
	return w, h, nil
}

func resolveDecodeDims(opts DecodeOptions, hasPrefix bool, prefixW, prefixH int) (int, int) {
	switch {
	case hasPrefix && opts.Width == 0 && opts.Height == 0:
		return prefixW, prefixH
	case hasPrefix && opts.Width != 0 && opts.Height == 0:
		h := int(math.Round(float64(opts.Width) * float64(prefixH) / float64(prefixW)))
		return opts.Width, maxInt(h, 1)
	case hasPrefix && opts.Width == 0 && opts.Height != 0:
		w := int(math.Round(float64(opts.Height) * float64(prefixW) / float64(prefixH)))
		return maxInt(w, 1), opts.Height
	case opts.Width != 0 && opts.Height != 0:
		return opts.Width, opts.Height
	case opts.Width != 0:
		return opts.Width, opts.Width
	case opts.Height != 0:
		return opts.Height, opts.Height
	default:
		size := opts.DefaultSize
		if size <= 0 {
			size = 32
		}
		return size, size
	}
}
