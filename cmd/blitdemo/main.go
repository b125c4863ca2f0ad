// Command blitdemo demonstrates the blit sprite rendering core.
// It renders a frame through the software backend into an offscreen
// window and saves the result as a PNG.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	_ "github.com/gogpu/blit/backend/software"
	"github.com/gogpu/blit/scene"
)

func main() {
	var (
		width  = flag.Int("width", 800, "frame width")
		height = flag.Int("height", 600, "frame height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	win := backend.NewOffscreenWindow(*width, *height)
	b, err := backend.New(backend.KindSoftware, win, backend.Options{})
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	defer b.Cleanup()

	textures := backend.NewRegistry()
	defer b.DisposeTextures(textures)

	loadTexture(b, textures, "checker", checkerboard(64, 8))
	loadTexture(b, textures, "glow", radialGlow(64))

	list := buildFrame(*width, *height)
	verts, err := b.Draw(list, textures)
	if err != nil {
		log.Fatalf("Draw failed: %v", err)
	}

	if err := win.Frame().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d vertices)\n", *output, *width, *height, verts)
}

func loadTexture(b backend.Backend, reg *backend.Registry, key string, img *blit.Pixmap) {
	tex, err := b.CreateTexture(img, backend.SamplerDesc{})
	if err != nil {
		log.Fatalf("Failed to create texture %q: %v", key, err)
	}
	reg.Insert(key, tex)
}

// buildFrame composes the demo scene: a tiled checkerboard floor, a
// ring of rotated tinted quads, and additive glows on top.
func buildFrame(w, h int) *scene.RenderList {
	cx := float64(w) / 2
	cy := float64(h) / 2

	builder := scene.NewListBuilder().
		Clear(blit.NewRGBA(0.08, 0.09, 0.12, 1))

	// Floor: one sprite, UV-tiled 8x6 across the full drawable.
	builder.Translate(cx, cy, 0).
		Scale(float64(w), float64(h), 1).
		SpriteUV("checker", blit.NewRGBA(0.5, 0.55, 0.6, 1),
			blit.V2(8, 6), blit.V2(0, 0)).
		ResetTransform()

	// Ring of rotated quads.
	const count = 12
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / count
		t := float64(i) / count
		builder.ResetTransform().
			Translate(cx+220*math.Cos(angle), cy+220*math.Sin(angle), 0).
			RotateZ(angle).
			Scale(70, 70, 1).
			Sprite("checker", blit.NewRGBA(1-t, 0.4, t, 0.9))
	}

	// Additive glows over the ring.
	builder.Blend(scene.BlendAdd)
	for i := 0; i < count; i += 3 {
		angle := 2 * math.Pi * float64(i) / count
		builder.ResetTransform().
			Translate(cx+220*math.Cos(angle), cy+220*math.Sin(angle), 0).
			Scale(160, 160, 1).
			Sprite("glow", blit.NewRGBA(1, 0.9, 0.6, 0.8))
	}

	return builder.Build()
}

// checkerboard builds a size x size texture with cells x cells squares.
func checkerboard(size, cells int) *blit.Pixmap {
	pm := blit.NewPixmap(size, size)
	cell := size / cells
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				pm.SetPixel(x, y, blit.White)
			} else {
				pm.SetPixel(x, y, blit.NewRGBA(0.15, 0.15, 0.15, 1))
			}
		}
	}
	return pm
}

// radialGlow builds a soft radial falloff texture.
func radialGlow(size int) *blit.Pixmap {
	pm := blit.NewPixmap(size, size)
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / c
			a := blit.Clamp01(1 - d)
			pm.SetPixel(x, y, blit.NewRGBA(1, 1, 1, a*a))
		}
	}
	return pm
}
