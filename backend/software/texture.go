package software

import (
	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
)

// Texture is the software backend's texture handle: a private copy of
// the decoded RGBA bitmap. There is no GPU resource behind it, so
// release is simply dropping the last reference.
type Texture struct {
	pix     *blit.Pixmap
	sampler backend.SamplerDesc
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.pix.Width()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.pix.Height()
}

// Kind returns backend.KindSoftware.
func (t *Texture) Kind() backend.Kind {
	return backend.KindSoftware
}

// texel returns the texture color at integer texel coordinates.
// Coordinates must already be wrapped into range.
func (t *Texture) texel(x, y int) blit.RGBA {
	return t.pix.GetPixel(x, y)
}
