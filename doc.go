// Package blit provides the shared value types of the blit rendering
// core: colors, vectors, 4x4 matrices and CPU pixel buffers.
//
// blit is a backend-agnostic 2D sprite renderer. A caller describes one
// frame as a scene.RenderList, hands it to a backend.Backend, and the
// active backend (pure-CPU software rasterizer or GPU via gogpu/wgpu)
// turns it into pixels. The same RenderList produces the same visual
// result on every backend.
//
// Package layout:
//
//   - blit (this package): RGBA, Vec2, Mat4, Pixmap, logging
//   - scene: RenderList, Object, Sprite, BlendMode, builder, pool
//   - backend: the Backend facade, texture registry, window surface
//   - backend/software: the CPU rasterizer backend
//   - backend/wgpu: the Pure Go GPU backend
//
// Typical use:
//
//	win := backend.NewOffscreenWindow(800, 600)
//	b, err := backend.New(backend.KindSoftware, win, backend.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Cleanup()
//
//	textures := backend.NewRegistry()
//	tex, _ := b.CreateTexture(pixmap, backend.SamplerDesc{})
//	textures.Insert("hero", tex)
//
//	list := scene.NewRenderList()
//	// ... append sprites ...
//	verts, err := b.Draw(list, textures)
package blit
