package blit

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(10, 20)
	if pm.Width() != 10 || pm.Height() != 20 {
		t.Errorf("size = %dx%d, want 10x20", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 10*20*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 10*20*4)
	}
}

func TestSetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, Red)

	got := pm.GetPixel(1, 2)
	if got != Red {
		t.Errorf("GetPixel(1, 2) = %+v, want %+v", got, Red)
	}
	if pm.GetPixel(0, 0) != Transparent {
		t.Error("untouched pixel should be transparent")
	}
}

func TestPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	// Must not panic.
	pm.SetPixel(-1, 0, Red)
	pm.SetPixel(0, -1, Red)
	pm.SetPixel(2, 0, Red)

	if got := pm.GetPixel(-1, 5); got != Transparent {
		t.Errorf("GetPixel out of bounds = %+v, want Transparent", got)
	}
}

func TestClear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got != Blue {
				t.Fatalf("GetPixel(%d, %d) = %+v, want Blue", x, y, got)
			}
		}
	}
}

func TestToImageFromImageRoundTrip(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 1, Green)

	back := FromImage(pm.ToImage())
	if back.GetPixel(0, 0) != Red || back.GetPixel(1, 1) != Green {
		t.Error("FromImage(ToImage()) lost pixel data")
	}
}

func TestFromImageConverts(t *testing.T) {
	// Non-RGBA sources go through the x/image conversion path.
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 255})

	pm := FromImage(gray)
	if got := pm.GetPixel(0, 0); got != White {
		t.Errorf("GetPixel(0, 0) = %+v, want White", got)
	}
	if got := pm.GetPixel(1, 0); got.R != 0 || got.A != 1 {
		t.Errorf("GetPixel(1, 0) = %+v, want opaque black", got)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	pm := FromImage(src)
	if pm.Width() != 2 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("GetPixel(0, 0) = %+v, want Red", got)
	}
}

func TestPixmapImageInterface(t *testing.T) {
	var _ image.Image = NewPixmap(1, 1)
}
