// Package backend defines the rendering backend facade: one stable
// operation set over structurally different rendering implementations.
//
// Exactly one concrete backend is active for a Backend's lifetime,
// selected at construction via New (explicit kind) or Default
// (priority order). Backend-specific types never leak past this
// boundary: textures are opaque Texture handles tagged with the
// creating backend's kind, and the window surface is an opaque Window
// handle supplied by the caller.
//
// Concrete backends register themselves from init functions on import:
//
//	import (
//	    _ "github.com/gogpu/blit/backend/software"
//	    _ "github.com/gogpu/blit/backend/wgpu"
//	)
//
// Calls on a single Backend instance must be serialized by the caller;
// no internal locking is provided on the draw path.
package backend
