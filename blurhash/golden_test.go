package blurhash

import (
	"fmt"
	"testing"
)

// goldenFixture names a deterministic fixture; see buildGoldenFixtures.
type goldenFixture struct {
	name string
	pm   *PixelMap
}

func buildGoldenFixtures() []goldenFixture {
	return []goldenFixture{
		{"solid_red_64x64", solidPixelMap(64, 64, 255, 0, 0)},
		{"solid_gray_32x32", solidPixelMap(32, 32, 128, 128, 128)},
		{"gradient_256x256", gradientPixelMap(256, 256)},
		{"gradient_wide_200x10", gradientPixelMap(200, 10)},
		{"gradient_tall_10x200", gradientPixelMap(10, 200)},
		{"tiny_3x3", solidPixelMap(3, 3, 64, 32, 16)},
	}
}

// TestGoldenGenerate logs the current hash for each fixture. These
// values are not pinned anywhere; this test exists so a maintainer can
// copy a printed hash into a regression fixture after reviewing a
// deliberate algorithm change.
func TestGoldenGenerate(t *testing.T) {
	for _, f := range buildGoldenFixtures() {
		hash, err := Encode(f.pm, EncodeOptions{Components: Infer()})
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		t.Logf("GOLDEN %-24s %s", f.name, hash)
	}
}

// TestGoldenDeterminism verifies that encoding each fixture twice
// produces byte-identical hashes.
func TestGoldenDeterminism(t *testing.T) {
	for _, f := range buildGoldenFixtures() {
		h1, err := Encode(f.pm, EncodeOptions{Components: Infer()})
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		h2, err := Encode(f.pm, EncodeOptions{Components: Infer()})
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		if h1 != h2 {
			t.Errorf("%s: non-deterministic\n  run1: %s\n  run2: %s", f.name, h1, h2)
		}
	}
}

// TestGoldenDecodeRoundTrip decodes each fixture's <W:H>-prefixed hash
// with no explicit size and asserts the output dimensions match the
// fixture's own size taken from the prefix, catching any regression in the
// resolveDecodeDims/reconstruct plumbing across the fixture set.
func TestGoldenDecodeRoundTrip(t *testing.T) {
	for _, f := range buildGoldenFixtures() {
		hash, err := Encode(f.pm, EncodeOptions{Components: Infer(), PrefixSize: true})
		if err != nil {
			t.Fatalf("%s: %v", f.name, err)
		}
		out, err := Decode(hash, DecodeOptions{})
		if err != nil {
			t.Fatalf("%s: decode: %v", f.name, err)
		}
		if out.Width != f.pm.Width || out.Height != f.pm.Height {
			t.Errorf("%s: decoded %dx%d, want %dx%d", f.name, out.Width, out.Height, f.pm.Width, f.pm.Height)
		}
	}
}

func init() {
	fixtures := buildGoldenFixtures()
	for _, f := range fixtures {
		if f.pm.Width <= 0 || f.pm.Height <= 0 {
			panic(fmt.Sprintf("golden: bad fixture %s", f.name))
		}
	}
}
