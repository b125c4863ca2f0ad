package wgpu

import (
	"image"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Texture is the wgpu backend's texture handle.
//
// Pixel data and the CPU-generated mip chain are retained alongside the
// GPU handle so the texture can be re-uploaded after device loss.
// The GPU-side upload goes through the owning backend's queue; see
// Backend.CreateTexture.
type Texture struct {
	id      uint64
	width   int
	height  int
	format  gputypes.TextureFormat
	sampler backend.SamplerDesc

	// levels holds mip level 0 (the original bitmap) and, when the
	// sampler requests mipmaps, the CPU-built chain down to 1x1.
	levels []*image.RGBA

	released bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Kind returns backend.KindWGPU.
func (t *Texture) Kind() backend.Kind {
	return backend.KindWGPU
}

// Format returns the GPU pixel format of the texture.
func (t *Texture) Format() gputypes.TextureFormat {
	return t.format
}

// MipLevelCount returns the number of mip levels, 1 when no chain was
// generated.
func (t *Texture) MipLevelCount() int {
	return len(t.levels)
}

// newTexture builds the CPU side of a wgpu texture: level 0 plus an
// optional mip chain scaled with x/image's bilinear kernel.
func newTexture(id uint64, img *blit.Pixmap, sampler backend.SamplerDesc) *Texture {
	t := &Texture{
		id:      id,
		width:   img.Width(),
		height:  img.Height(),
		format:  gputypes.TextureFormatRGBA8Unorm,
		sampler: sampler,
	}

	t.levels = append(t.levels, img.ToImage())
	if sampler.Mipmaps {
		t.buildMipChain()
	}
	return t
}

// buildMipChain appends successively halved levels down to 1x1.
func (t *Texture) buildMipChain() {
	w, h := t.width, t.height
	src := t.levels[0]
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)
		t.levels = append(t.levels, dst)
		src = dst
	}
}
