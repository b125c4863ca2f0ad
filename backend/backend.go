package backend

import (
	"errors"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/scene"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend kind
	// is not registered or cannot be constructed on this platform.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called after
	// Cleanup or before initialization completed.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrSurfaceLost is returned from Draw when the window surface was
	// lost. The caller may retry next frame.
	ErrSurfaceLost = errors.New("backend: surface lost")

	// ErrNilImage is returned from CreateTexture for a nil or
	// zero-sized image.
	ErrNilImage = errors.New("backend: nil or empty texture image")
)

// Kind identifies a concrete backend implementation.
type Kind string

// Registered backend kinds.
const (
	// KindSoftware is the pure-CPU rasterizer backend.
	KindSoftware Kind = "software"
	// KindWGPU is the Pure Go GPU backend (gogpu/wgpu).
	KindWGPU Kind = "wgpu"
)

// Options is the configuration surface of backend creation. It is
// consumed once, at New time; changing it afterwards has no effect.
type Options struct {
	// VSync requests presentation synchronized to the display refresh.
	// The software backend ignores it (presentation is synchronous).
	VSync bool

	// Debug enables backend validation layers and verbose diagnostics
	// where the implementation supports them.
	Debug bool
}

// Backend is the interface every rendering backend implements.
//
// One Backend renders frames for one Window. The caller is responsible
// for serializing calls on a single instance: Draw, CreateTexture and
// DisposeTextures must never run concurrently with each other.
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Kind returns the backend kind tag used on Texture handles.
	Kind() Kind

	// Draw executes one frame's commands. It returns the total number
	// of emitted vertices, a diagnostic that is not guaranteed precise
	// across backends. Draw must not mutate the list. A zero-area
	// drawable is not an error: Draw returns (0, nil) with no work
	// done. Any other failure is returned and the caller may retry
	// next frame.
	Draw(list *scene.RenderList, textures *Registry) (int, error)

	// Resize adjusts internal projection and surface state for a new
	// drawable size. A zero width or height is a no-op.
	Resize(width, height int)

	// CreateTexture uploads the image and returns an opaque handle
	// tagged with this backend's kind. The handle is only valid for
	// draw calls issued against the same Backend instance. The caller
	// inserts the handle into its Registry under a key of its choice;
	// CreateTexture never touches the registry itself.
	CreateTexture(img *blit.Pixmap, sampler SamplerDesc) (Texture, error)

	// DisposeTextures waits for the backend to go idle, releases
	// backend resources for every entry in the registry, and empties
	// it. Any externally retained handle is invalid afterwards.
	// Must not be called concurrently with Draw.
	DisposeTextures(reg *Registry)

	// WaitForIdle blocks until all backend-side work referencing
	// currently-live resources has completed. A no-op for synchronous
	// backends.
	WaitForIdle()

	// Cleanup releases the surface, device and any global backend
	// resources. The Backend is unusable afterward.
	Cleanup()
}

// New constructs and initializes the backend of the requested kind,
// bound to the given window. Initialization failures are fatal: an
// error is returned and no partial Backend is produced.
func New(kind Kind, win Window, opts Options) (Backend, error) {
	factory := lookup(kind)
	if factory == nil {
		return nil, ErrBackendNotAvailable
	}
	b, err := factory(win, opts)
	if err != nil {
		return nil, err
	}
	blit.Logger().Info("backend created", "kind", string(kind))
	return b, nil
}

// Default constructs the best available backend in priority order
// (wgpu before software), falling through to the next kind when
// initialization fails. Returns ErrBackendNotAvailable when no
// registered kind can be constructed.
func Default(win Window, opts Options) (Backend, error) {
	for _, kind := range priority() {
		b, err := New(kind, win, opts)
		if err == nil {
			return b, nil
		}
		blit.Logger().Warn("backend unavailable, trying next",
			"kind", string(kind), "error", err)
	}
	return nil, ErrBackendNotAvailable
}
