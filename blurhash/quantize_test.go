package blurhash

import "testing"

func TestQuantizeFixpoints(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{-1, 0},
		{0, 9},
		{1, 18},
	}
	for _, c := range cases {
		if got := quantizeAC(c.v); got != c.want {
			t.Errorf("quantizeAC(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestDequantizeFixpoints(t *testing.T) {
	cases := []struct {
		q    int
		want float64
	}{
		{0, -1},
		{9, 0},
		{18, 1},
	}
	for _, c := range cases {
		if got := dequantizeAC(c.q); got != c.want {
			t.Errorf("dequantizeAC(%d) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestQuantizeClamped(t *testing.T) {
	if got := quantizeAC(10); got != 18 {
		t.Errorf("quantizeAC(10) = %d, want 18", got)
	}
	if got := quantizeAC(-10); got != 0 {
		t.Errorf("quantizeAC(-10) = %d, want 0", got)
	}
}

func TestSignPowZeroSign(t *testing.T) {
	if got := signPow(0, 0.5); got != 0 {
		t.Errorf("signPow(0, 0.5) = %v, want 0", got)
	}
}
