package blurhash

import "testing"

func TestReduceAspect(t *testing.T) {
	cases := []struct {
		w, h, wantW, wantH int
	}{
		{640, 480, 4, 3},
		{1920, 1080, 16, 9},
		{100, 100, 1, 1},
		{7, 3, 7, 3},
	}
	for _, c := range cases {
		w, h := ReduceAspect(c.w, c.h)
		if w != c.wantW || h != c.wantH {
			t.Errorf("ReduceAspect(%d,%d) = (%d,%d), want (%d,%d)", c.w, c.h, w, h, c.wantW, c.wantH)
		}
	}
}

func TestOrientationOf(t *testing.T) {
	if OrientationOf(100, 50) != Landscape {
		t.Error("100x50 should be landscape")
	}
	if OrientationOf(50, 100) != Portrait {
		t.Error("50x100 should be portrait")
	}
	if OrientationOf(50, 50) != Square {
		t.Error("50x50 should be square")
	}
}

func TestInferComponentsLandscapeWiderGetsMoreX(t *testing.T) {
	x, y := inferComponents(640, 480)
	if x < y {
		t.Errorf("landscape inference: X=%d should be >= Y=%d", x, y)
	}
}

func TestInferComponentsPortraitTallerGetsMoreY(t *testing.T) {
	x, y := inferComponents(480, 640)
	if y < x {
		t.Errorf("portrait inference: Y=%d should be >= X=%d", y, x)
	}
}

func TestInferComponentsSquareIsBalanced(t *testing.T) {
	x, y := inferComponents(100, 100)
	if x != y {
		t.Errorf("square inference: X=%d, Y=%d should be equal", x, y)
	}
}

func TestInferComponentsClampedToRange(t *testing.T) {
	x, y := inferComponents(10000, 1)
	if x < 1 || x > 9 || y < 1 || y > 9 {
		t.Errorf("extreme aspect produced out-of-range components: %d,%d", x, y)
	}
}

func TestInferComponentsZeroDimensionFallsBackToDefault(t *testing.T) {
	x, y := inferComponents(0, 10)
	if x != 4 || y != 4 {
		t.Errorf("zero dimension: got (%d,%d), want (4,4)", x, y)
	}
}
