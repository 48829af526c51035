package colorutil

import (
	"math"
	"testing"
)

func TestContrastRatio(t *testing.T) {
	cases := []struct {
		name     string
		fg, bg   RGB
		minRatio float64
	}{
		{"blackOnWhite", RGB{0, 0, 0}, RGB{255, 255, 255}, 4.5},
		{"whiteOnBlack", RGB{255, 255, 255}, RGB{0, 0, 0}, 4.5},
		{"darkRedOnWhite", RGB{185, 28, 28}, RGB{255, 255, 255}, 4.5},
		{"amberOnBlack", RGB{245, 158, 11}, RGB{17, 24, 39}, 4.5},
	}
	for _, tc := range cases {
		ratio := ContrastRatio(tc.fg, tc.bg)
		if ratio < tc.minRatio {
			t.Fatalf("%s contrast ratio %.2f < %.2f", tc.name, ratio, tc.minRatio)
		}
	}
}

func TestAutoTextColor(t *testing.T) {
	cases := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{"lightBackground", RGB{255, 247, 237}, black},
		{"darkBackground", RGB{15, 23, 42}, white},
		{"medium", RGB{120, 113, 108}, white},
	}
	for _, tc := range cases {
		got := AutoTextColor(tc.bg)
		if got != tc.want {
			t.Fatalf("%s AutoTextColor=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestLuma709Extremes(t *testing.T) {
	if got := Luma709(black); got != 0 {
		t.Fatalf("Luma709(black)=%v want 0", got)
	}
	if got := Luma709(white); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Luma709(white)=%v want 1", got)
	}
	if got := Luma709Scaled(white); got != Luma709Scale {
		t.Fatalf("Luma709Scaled(white)=%d want %d", got, Luma709Scale)
	}
}

func TestLuma709ScaledMatchesFloat(t *testing.T) {
	samples := []RGB{{16, 16, 16}, {0, 43, 54}, {253, 246, 227}, {47, 143, 211}, {92, 92, 255}}
	for _, c := range samples {
		want := Luma709(c)
		got := float64(Luma709Scaled(c)) / Luma709Scale
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("Luma709Scaled(%v)/scale=%v, Luma709=%v", c, got, want)
		}
	}
}
