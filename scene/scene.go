package scene

import "github.com/gogpu/blit"

// Object is one entry of a RenderList: a payload plus placement,
// compositing and camera-selection state.
type Object struct {
	// Type is the object payload (Sprite, Mesh or TexturedMesh).
	Type ObjectType

	// Transform is the 4x4 model matrix placing the object.
	Transform blit.Mat4

	// Blend selects how the object composites over earlier objects.
	Blend BlendMode

	// Z is an advisory signed draw priority. The list position, not
	// Z, decides compositing order; backends never resort by Z.
	Z int32

	// Order is an advisory monotonic tie-break counter assigned by the
	// producer of the list.
	Order uint64

	// Camera indexes into RenderList.Cameras. GPU backends use the
	// selected projection-view matrix; the software path applies its
	// own orthographic projection instead.
	Camera int
}

// RenderList is the complete, ordered description of one frame's
// drawable content. The caller builds a fresh list each frame (or
// recycles one through a ListPool) and drops it after the draw call
// returns; a RenderList owns no resources.
type RenderList struct {
	// ClearColor fills the framebuffer before any object is drawn.
	ClearColor blit.RGBA

	// Cameras holds the frame's projection-view matrices, indexed by
	// Object.Camera.
	Cameras []blit.Mat4

	// Objects are drawn strictly in slice order: painter's algorithm,
	// later entries over earlier ones.
	Objects []Object
}

// NewRenderList creates an empty render list with a transparent clear
// color and a single identity camera.
func NewRenderList() *RenderList {
	return &RenderList{
		Cameras: []blit.Mat4{blit.Identity()},
		Objects: make([]Object, 0, 64),
	}
}

// Reset clears the list for reuse without deallocating memory.
func (l *RenderList) Reset() {
	l.ClearColor = blit.Transparent
	l.Cameras = l.Cameras[:0]
	l.Cameras = append(l.Cameras, blit.Identity())
	l.Objects = l.Objects[:0]
}

// Append adds an object to the end of the list.
func (l *RenderList) Append(obj Object) {
	l.Objects = append(l.Objects, obj)
}

// Len returns the number of objects in the list.
func (l *RenderList) Len() int {
	return len(l.Objects)
}

// IsEmpty reports whether the list has no objects.
func (l *RenderList) IsEmpty() bool {
	return len(l.Objects) == 0
}
