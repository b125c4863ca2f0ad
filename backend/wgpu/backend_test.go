package wgpu

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/backend"
	"github.com/gogpu/blit/scene"
)

func TestBackendImplementsInterface(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
}

func TestBackendRegistration(t *testing.T) {
	if !backend.IsRegistered(backend.KindWGPU) {
		t.Error("wgpu backend should be registered on import")
	}
}

func TestNewNilWindow(t *testing.T) {
	_, err := New(nil, backend.Options{})
	if !errors.Is(err, ErrNilWindow) {
		t.Errorf("New(nil) error = %v, want ErrNilWindow", err)
	}
}

func TestNewWithDeviceValidation(t *testing.T) {
	win := backend.NewOffscreenWindow(4, 4)

	if _, err := NewWithDevice(nil, backend.Options{}, NullDeviceHandle{}); !errors.Is(err, ErrNilWindow) {
		t.Errorf("NewWithDevice(nil window) error = %v, want ErrNilWindow", err)
	}
	if _, err := NewWithDevice(win, backend.Options{}, nil); !errors.Is(err, ErrNoGPU) {
		t.Errorf("NewWithDevice(nil host) error = %v, want ErrNoGPU", err)
	}
}

// newSharedBackend creates a backend on the null shared device, skipping
// the adapter acquisition that needs real GPU drivers. Shader
// compilation can still fail in constrained test environments; callers
// bail out in that case.
func newSharedBackend(t *testing.T) *Backend {
	t.Helper()

	win := backend.NewOffscreenWindow(4, 4)
	b, err := NewWithDevice(win, backend.Options{}, NullDeviceHandle{})
	if err != nil {
		t.Logf("NewWithDevice() returned error (expected in test environment): %v", err)
		return nil
	}
	t.Cleanup(b.Cleanup)
	return b
}

func TestNewWithDevice(t *testing.T) {
	b := newSharedBackend(t)
	if b == nil {
		return
	}

	if b.Name() != "wgpu" {
		t.Errorf("Name() = %q, want %q", b.Name(), "wgpu")
	}
	if b.Kind() != backend.KindWGPU {
		t.Errorf("Kind() = %q, want %q", b.Kind(), backend.KindWGPU)
	}
	if b.GPUInfo() != nil {
		t.Error("GPUInfo() should be nil for a shared device")
	}
	if len(b.spriteShader) == 0 {
		t.Error("sprite shader should be compiled after init")
	}

	// WaitForIdle must return immediately on a shared device.
	b.WaitForIdle()
}

func TestNewAttemptsRealGPU(t *testing.T) {
	win := backend.NewOffscreenWindow(4, 4)
	b, err := New(win, backend.Options{})
	if err != nil {
		t.Logf("New() returned error (expected in test environment): %v", err)
		return
	}
	defer b.Cleanup()

	if info := b.GPUInfo(); info != nil {
		t.Logf("GPU selected: %s", info.String())
	}
	b.WaitForIdle()
}

func TestDrawVertexCounting(t *testing.T) {
	b := newSharedBackend(t)
	if b == nil {
		return
	}

	pm := blit.NewPixmap(2, 2)
	pm.Clear(blit.White)
	tex, err := b.CreateTexture(pm, backend.SamplerDesc{})
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	reg := backend.NewRegistry()
	reg.Insert("white", tex)

	invisible := scene.NewSprite("white")
	invisible.Tint.A = 0

	list := scene.NewRenderList()
	list.Append(scene.Object{Type: scene.NewSprite("white"), Transform: blit.Identity()})
	list.Append(scene.Object{Type: scene.NewSprite("missing"), Transform: blit.Identity()})
	list.Append(scene.Object{Type: invisible, Transform: blit.Identity()})
	list.Append(scene.Object{
		Type: scene.Mesh{
			Vertices: make([]scene.MeshVertex, 3),
			Topology: scene.TopologyTriangles,
		},
		Transform: blit.Identity(),
	})
	list.Append(scene.Object{
		Type: scene.TexturedMesh{
			TextureID: "white",
			Vertices:  make([]scene.TexturedVertex, 6),
			Topology:  scene.TopologyTriangles,
		},
		Transform: blit.Identity(),
	})

	verts, err := b.Draw(list, reg)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	// 4 for the visible sprite, 0 for the missing texture and the
	// zero-alpha tint, 3 + 6 for the meshes.
	if verts != 13 {
		t.Errorf("Draw() = %d vertices, want 13", verts)
	}
}

func TestDrawZeroSizeDrawable(t *testing.T) {
	win := backend.NewOffscreenWindow(0, 0)
	b, err := NewWithDevice(win, backend.Options{}, NullDeviceHandle{})
	if err != nil {
		t.Logf("NewWithDevice() returned error (expected in test environment): %v", err)
		return
	}
	defer b.Cleanup()

	verts, err := b.Draw(scene.NewRenderList(), backend.NewRegistry())
	if err != nil {
		t.Errorf("Draw() with zero-size drawable error = %v, want nil", err)
	}
	if verts != 0 {
		t.Errorf("Draw() with zero-size drawable = %d vertices, want 0", verts)
	}
}

func TestDrawAfterCleanup(t *testing.T) {
	win := backend.NewOffscreenWindow(4, 4)
	b, err := NewWithDevice(win, backend.Options{}, NullDeviceHandle{})
	if err != nil {
		t.Logf("NewWithDevice() returned error (expected in test environment): %v", err)
		return
	}
	b.Cleanup()
	b.Cleanup() // double Cleanup must be safe

	if _, err := b.Draw(scene.NewRenderList(), backend.NewRegistry()); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Draw() after Cleanup error = %v, want ErrNotInitialized", err)
	}
}

func TestCreateTextureValidation(t *testing.T) {
	b := newSharedBackend(t)
	if b == nil {
		return
	}

	if _, err := b.CreateTexture(nil, backend.SamplerDesc{}); !errors.Is(err, backend.ErrNilImage) {
		t.Errorf("CreateTexture(nil) error = %v, want ErrNilImage", err)
	}
}

func TestDisposeTexturesReleasesHandles(t *testing.T) {
	b := newSharedBackend(t)
	if b == nil {
		return
	}

	pm := blit.NewPixmap(2, 2)
	tex, err := b.CreateTexture(pm, backend.SamplerDesc{})
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	reg := backend.NewRegistry()
	reg.Insert("tex", tex)

	b.DisposeTextures(reg)

	if reg.Len() != 0 {
		t.Errorf("registry Len() after DisposeTextures = %d, want 0", reg.Len())
	}
	if len(b.textures) != 0 {
		t.Errorf("backend tracks %d textures after DisposeTextures, want 0", len(b.textures))
	}
	if !tex.(*Texture).released {
		t.Error("texture should be marked released")
	}
}

func TestAppendSpriteQuadGeometry(t *testing.T) {
	sprite := scene.NewSprite("tex")
	stream := appendSpriteQuad(nil, &sprite, blit.Identity())

	if len(stream) != 6 {
		t.Fatalf("len(stream) = %d, want 6 (two triangles)", len(stream))
	}

	// Triangles 0-1-2 and 0-2-3 of the unit quad.
	wantPos := [6][2]float32{
		{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5},
		{-0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
	}
	wantUV := [6][2]float32{
		{0, 1}, {1, 1}, {1, 0},
		{0, 1}, {1, 0}, {0, 0},
	}
	for i, v := range stream {
		if v.pos != wantPos[i] {
			t.Errorf("stream[%d].pos = %v, want %v", i, v.pos, wantPos[i])
		}
		if v.uv != wantUV[i] {
			t.Errorf("stream[%d].uv = %v, want %v", i, v.uv, wantUV[i])
		}
		if v.tint != [4]float32{1, 1, 1, 1} {
			t.Errorf("stream[%d].tint = %v, want opaque white", i, v.tint)
		}
	}
}

func TestAppendSpriteQuadTransform(t *testing.T) {
	sprite := scene.NewSprite("tex")
	mvp := blit.Translate(10, 20, 0).Mul(blit.Scale(4, 2, 1))
	stream := appendSpriteQuad(nil, &sprite, mvp)

	// Bottom-left corner (-0.5, -0.5) scaled then translated.
	want := [2]float32{8, 19}
	if stream[0].pos != want {
		t.Errorf("stream[0].pos = %v, want %v", stream[0].pos, want)
	}
}

func TestAppendSpriteQuadUVWindow(t *testing.T) {
	sprite := scene.NewSprite("tex")
	sprite.UVScale = blit.V2(0.5, 0.5)
	sprite.UVOffset = blit.V2(0.25, 0.25)
	stream := appendSpriteQuad(nil, &sprite, blit.Identity())

	// Top-left corner has UV base (0, 0): offset only.
	if got := stream[5].uv; got != [2]float32{0.25, 0.25} {
		t.Errorf("top-left uv = %v, want {0.25, 0.25}", got)
	}
	// Bottom-right corner has UV base (1, 1): scale plus offset.
	if got := stream[1].uv; got != [2]float32{0.75, 0.75} {
		t.Errorf("bottom-right uv = %v, want {0.75, 0.75}", got)
	}
}

func TestAppendSpriteQuadLocalOffset(t *testing.T) {
	sprite := scene.NewSprite("tex")
	sprite.LocalOffset = blit.V2(1, 0)
	// Rotate the local offset 90 degrees counter-clockwise.
	sprite.LocalOffsetSin = 1
	sprite.LocalOffsetCos = 0
	stream := appendSpriteQuad(nil, &sprite, blit.Identity())

	// (1, 0) rotated 90 degrees is (0, 1); bottom-left lands at
	// (-0.5, 0.5).
	got := stream[0].pos
	if math.Abs(float64(got[0])+0.5) > 1e-6 || math.Abs(float64(got[1])-0.5) > 1e-6 {
		t.Errorf("stream[0].pos = %v, want {-0.5, 0.5}", got)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
}
