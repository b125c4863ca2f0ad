package blit

import (
	"image/color"
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want uint32
	}{
		{"transparent black", RGBA{0, 0, 0, 0}, 0x00000000},
		{"opaque white", RGBA{1, 1, 1, 1}, 0xFFFFFFFF},
		{"opaque red", RGBA{1, 0, 0, 1}, 0xFFFF0000},
		{"opaque green", RGBA{0, 1, 0, 1}, 0xFF00FF00},
		{"opaque blue", RGBA{0, 0, 1, 1}, 0xFF0000FF},
		{"half gray", RGBA{0.5, 0.5, 0.5, 1}, 0xFF808080},
		{"clamped above", RGBA{2, 2, 2, 2}, 0xFFFFFFFF},
		{"clamped below", RGBA{-1, -1, -1, -1}, 0x00000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pack(); got != tt.want {
				t.Errorf("Pack() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestPackRounding(t *testing.T) {
	// 0.5*255 = 127.5 rounds to 128, not truncates to 127.
	got := RGBA{0.5, 0, 0, 0}.Pack()
	if r := got >> 16 & 0xFF; r != 128 {
		t.Errorf("Pack() red channel = %d, want 128", r)
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	words := []uint32{0x00000000, 0xFFFFFFFF, 0x80402010, 0xFF123456}
	for _, w := range words {
		if got := Unpack(w).Pack(); got != w {
			t.Errorf("Unpack(%#08x).Pack() = %#08x", w, got)
		}
	}
}

func TestMul(t *testing.T) {
	c := RGBA{0.5, 1, 0.25, 1}.Mul(RGBA{1, 0.5, 2, 0.5})
	want := RGBA{0.5, 0.5, 0.5, 0.5}
	if c != want {
		t.Errorf("Mul() = %+v, want %+v", c, want)
	}
}

func TestMulClamps(t *testing.T) {
	c := RGBA{2, 2, 2, 2}.Mul(RGBA{2, 2, 2, 2})
	if c != White {
		t.Errorf("Mul() = %+v, want clamped to white", c)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	got := FromColor(orig).Color()
	if got != orig {
		t.Errorf("FromColor().Color() = %+v, want %+v", got, orig)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.A != 0.5 || c.R != 1 {
		t.Errorf("WithAlpha() = %+v", c)
	}
}
