package blurhash

import "errors"

// Sentinel errors for the codec's synchronous, typed failures (spec §7).
// Callers should use errors.Is against these; wrapping call sites add
// context with fmt.Errorf("...: %w", err).
var (
	// ErrInvalidHashLength is returned when a hash is shorter than 6
	// characters, or its body length doesn't match 4 + 2*X*Y.
	ErrInvalidHashLength = errors.New("blurhash: invalid hash length")

	// ErrInvalidCharacter is returned when a hash contains a byte outside
	// the 83-character alphabet.
	ErrInvalidCharacter = errors.New("blurhash: invalid character")

	// ErrInvalidLinearInput is returned when Encode is given a source that
	// is neither a *PixelMap nor a *LinearMap, or DecodeToPixels an input
	// that is neither a *PixelMap nor a hash string.
	ErrInvalidLinearInput = errors.New("blurhash: invalid linear input")

	// ErrInvalidDimensions is returned when a PixelMap has zero width or
	// height, or jagged rows.
	ErrInvalidDimensions = errors.New("blurhash: invalid dimensions")

	// ErrValueTooLarge is returned by base83 encoding when value >= 83^length.
	ErrValueTooLarge = errors.New("blurhash: value too large for base83 width")

	// ErrResolutionOutOfRange names the case of a sampler resolution
	// outside [4,128]. Per spec §7 this is non-fatal: the Pixel Sampler
	// collaborator (internal/sampler) clamps and logs a warning instead of
	// returning it, and the codec itself never returns it either.
	ErrResolutionOutOfRange = errors.New("blurhash: resolution out of range")
)
