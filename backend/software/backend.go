package software

import (
	"errors"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/blit/internal/parallel"
	"github.com/gogpu/blit/scene"
)

// Software backend errors.
var (
	// ErrNilWindow is returned when creating a backend without a window.
	ErrNilWindow = errors.New("software: nil window")
)

// init registers the software backend on package import.
func init() {
	backend.Register(backend.KindSoftware, func(win backend.Window, opts backend.Options) (backend.Backend, error) {
		return New(win, opts)
	})
}

// Backend is the CPU rasterizer backend. It owns the packed framebuffer
// and the orthographic projection for the current drawable size.
//
// Backend is synchronous by construction: Draw composites every object
// and presents the frame before returning, so WaitForIdle is a no-op.
// Calls on one Backend must be serialized by the caller.
type Backend struct {
	win   backend.Window
	debug bool

	width  int
	height int
	proj   blit.Mat4

	// fb holds one packed (A<<24)|(R<<16)|(G<<8)|B word per pixel,
	// row-major from the top row.
	fb []uint32

	// frame is the RGBA staging buffer handed to the window presenter.
	frame *blit.Pixmap

	pool *parallel.Pool

	initialized bool
}

// New creates a software backend bound to the given window.
// Software initialization cannot fail for a valid window: there is no
// driver underneath.
func New(win backend.Window, opts backend.Options) (*Backend, error) {
	if win == nil {
		return nil, ErrNilWindow
	}

	b := &Backend{
		win:         win,
		debug:       opts.Debug,
		pool:        parallel.NewPool(0),
		initialized: true,
	}

	w, h := win.Size()
	b.resize(w, h)

	blit.Logger().Info("software backend initialized",
		"width", w, "height", h, "workers", b.pool.Workers())
	return b, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return string(backend.KindSoftware)
}

// Kind returns backend.KindSoftware.
func (b *Backend) Kind() backend.Kind {
	return backend.KindSoftware
}

// Resize adjusts the framebuffer and projection for a new drawable
// size. A zero width or height is a no-op: the old buffer stays, which
// keeps the projection construction free of divisions by zero.
func (b *Backend) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	b.resize(width, height)
}

// resize reallocates the framebuffer and recomputes the projection.
// Callers guarantee width > 0 and height > 0.
func (b *Backend) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == b.width && height == b.height {
		return
	}
	b.width = width
	b.height = height
	b.fb = make([]uint32, width*height)
	b.frame = blit.NewPixmap(width, height)
	// Logical space is [0,width]x[0,height], Y up with the origin at
	// the bottom-left. The NDC-to-pixel mapping flips Y, so logical
	// top lands on row 0 and sprites render upright.
	b.proj = blit.Ortho(0, float64(width), 0, float64(height), -1, 1)

	blit.Logger().Debug("software framebuffer resized",
		"width", width, "height", height)
}

// Draw rasterizes the render list into the framebuffer and presents it.
// It returns 4 vertices per rasterized sprite. A zero-area drawable
// returns (0, nil) with no work done.
func (b *Backend) Draw(list *scene.RenderList, textures *backend.Registry) (int, error) {
	if !b.initialized {
		return 0, backend.ErrNotInitialized
	}

	w, h := b.win.Size()
	if w <= 0 || h <= 0 {
		return 0, nil
	}
	b.resize(w, h)

	b.clear(list.ClearColor.Pack())

	vertices := 0
	for i := range list.Objects {
		obj := &list.Objects[i]
		sprite, ok := obj.Type.(scene.Sprite)
		if !ok {
			// Meshes are GPU-only; the software path skips them.
			continue
		}
		if b.drawSprite(obj, &sprite, textures) {
			vertices += 4
		}
	}

	if err := b.present(); err != nil {
		return vertices, err
	}
	return vertices, nil
}

// clear fills every framebuffer pixel with the packed clear color.
func (b *Backend) clear(packed uint32) {
	b.pool.ForRows(0, b.height, func(y0, y1 int) {
		row := b.fb[y0*b.width : y1*b.width]
		for i := range row {
			row[i] = packed
		}
	})
}

// drawSprite transforms, clips and rasterizes one sprite. It reports
// whether the sprite produced vertices, i.e. survived every skip rule.
func (b *Backend) drawSprite(obj *scene.Object, sprite *scene.Sprite, textures *backend.Registry) bool {
	handle := textures.Lookup(sprite.TextureID)
	if handle == nil {
		// Missing textures are non-fatal by contract.
		blit.Logger().Debug("sprite texture missing", "texture", sprite.TextureID)
		return false
	}
	tex, ok := handle.(*Texture)
	if !ok {
		// Handle created by a different backend kind.
		blit.Logger().Warn("sprite texture from foreign backend",
			"texture", sprite.TextureID, "kind", string(handle.Kind()))
		return false
	}
	if sprite.Tint.A <= 0 {
		return false
	}

	// Unit quad in object-local space, counter-clockwise from the
	// bottom-left corner, with the fixed UV base: V grows downward in
	// texture space while Y grows upward in local space.
	quad := [4]blit.Vec2{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}
	uvBase := [4]blit.Vec2{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}

	clip := b.proj.Mul(obj.Transform)

	var verts [4]vertex
	for i, corner := range quad {
		pos := clip.MulVec4(blit.V4(corner.X, corner.Y, 0, 1))
		if pos.W == 0 {
			// Degenerate projection: cannot divide.
			return false
		}
		ndc := pos.PerspectiveDivide()
		verts[i] = vertex{
			pos: blit.V2(
				(ndc.X+1)/2*float64(b.width),
				(1-ndc.Y)/2*float64(b.height),
			),
			uv: uvBase[i].MulV(sprite.UVScale).Add(sprite.UVOffset),
		}
	}

	// Split the quad into triangles 0-1-2 and 0-2-3.
	b.rasterizeTriangle(verts[0], verts[1], verts[2], tex, sprite.Tint, obj.Blend)
	b.rasterizeTriangle(verts[0], verts[2], verts[3], tex, sprite.Tint, obj.Blend)
	return true
}

// present converts the packed framebuffer to RGBA bytes and hands it to
// the window, if the window accepts CPU frames.
func (b *Backend) present() error {
	presenter, ok := b.win.(backend.PixmapPresenter)
	if !ok {
		return nil
	}

	data := b.frame.Data()
	b.pool.ForRows(0, b.height, func(y0, y1 int) {
		for i := y0 * b.width; i < y1*b.width; i++ {
			p := b.fb[i]
			data[i*4+0] = uint8(p >> 16)
			data[i*4+1] = uint8(p >> 8)
			data[i*4+2] = uint8(p)
			data[i*4+3] = uint8(p >> 24)
		}
	})
	return presenter.Present(b.frame)
}

// CreateTexture copies the image into a software texture handle.
// The sampler is recorded but not consulted: the software path always
// samples nearest-texel with fractional repeat wrapping.
func (b *Backend) CreateTexture(img *blit.Pixmap, sampler backend.SamplerDesc) (backend.Texture, error) {
	if !b.initialized {
		return nil, backend.ErrNotInitialized
	}
	if img == nil || img.Width() <= 0 || img.Height() <= 0 {
		return nil, backend.ErrNilImage
	}

	pix := blit.NewPixmap(img.Width(), img.Height())
	copy(pix.Data(), img.Data())
	return &Texture{pix: pix, sampler: sampler}, nil
}

// DisposeTextures empties the registry. Software textures hold no
// backend resources beyond their bitmap, so dropping the registry's
// references is the release.
func (b *Backend) DisposeTextures(reg *backend.Registry) {
	b.WaitForIdle()
	if reg == nil {
		return
	}
	n := reg.Len()
	reg.Clear()
	blit.Logger().Debug("software textures disposed", "count", n)
}

// WaitForIdle is a no-op: the software path is synchronous by
// construction.
func (b *Backend) WaitForIdle() {}

// Cleanup releases the framebuffer and worker pool. The backend is
// unusable afterward.
func (b *Backend) Cleanup() {
	if !b.initialized {
		return
	}
	b.pool.Close()
	b.fb = nil
	b.frame = nil
	b.width = 0
	b.height = 0
	b.initialized = false
	blit.Logger().Info("software backend cleaned up")
}
