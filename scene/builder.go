package scene

import "github.com/gogpu/blit"

// ListBuilder provides a fluent API for constructing render lists
// ergonomically. It wraps a RenderList and provides chainable methods
// for appending objects with accumulated transform and blend state.
//
// The builder maintains a current transform that accumulates with each
// transform operation and stamps every appended object. It also assigns
// the monotonic Order tie-break field automatically.
//
// Example:
//
//	list := NewListBuilder().
//	    Clear(blit.Black).
//	    Translate(400, 300, 0).
//	    Scale(128, 128, 1).
//	    Sprite("hero", blit.White).
//	    Build()
type ListBuilder struct {
	list      *RenderList
	transform blit.Mat4
	blend     BlendMode
	camera    int
	order     uint64
}

// NewListBuilder creates a new builder with an empty render list.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{
		list:      NewRenderList(),
		transform: blit.Identity(),
	}
}

// NewListBuilderFrom creates a builder wrapping an existing render
// list. This is useful for appending to a recycled list from a ListPool.
func NewListBuilderFrom(list *RenderList) *ListBuilder {
	if list == nil {
		list = NewRenderList()
	}
	return &ListBuilder{
		list:      list,
		transform: blit.Identity(),
		order:     uint64(len(list.Objects)),
	}
}

// Clear sets the frame's clear color.
func (b *ListBuilder) Clear(c blit.RGBA) *ListBuilder {
	b.list.ClearColor = c
	return b
}

// Camera appends a projection-view matrix and selects it for
// subsequently appended objects.
func (b *ListBuilder) Camera(m blit.Mat4) *ListBuilder {
	b.list.Cameras = append(b.list.Cameras, m)
	b.camera = len(b.list.Cameras) - 1
	return b
}

// Blend selects the blend mode for subsequently appended objects.
func (b *ListBuilder) Blend(mode BlendMode) *ListBuilder {
	b.blend = mode
	return b
}

// Translate accumulates a translation into the current transform.
func (b *ListBuilder) Translate(x, y, z float64) *ListBuilder {
	b.transform = b.transform.Mul(blit.Translate(x, y, z))
	return b
}

// Scale accumulates a scale into the current transform.
func (b *ListBuilder) Scale(x, y, z float64) *ListBuilder {
	b.transform = b.transform.Mul(blit.Scale(x, y, z))
	return b
}

// RotateZ accumulates a Z-axis rotation into the current transform.
func (b *ListBuilder) RotateZ(angle float64) *ListBuilder {
	b.transform = b.transform.Mul(blit.RotateZ(angle))
	return b
}

// ResetTransform clears the accumulated transform.
func (b *ListBuilder) ResetTransform() *ListBuilder {
	b.transform = blit.Identity()
	return b
}

// Sprite appends a sprite with the current transform, blend mode and
// camera, and the given texture key and tint.
func (b *ListBuilder) Sprite(textureID string, tint blit.RGBA) *ListBuilder {
	s := NewSprite(textureID)
	s.Tint = tint
	return b.Object(s)
}

// SpriteUV appends a sprite with an explicit UV transform.
func (b *ListBuilder) SpriteUV(textureID string, tint blit.RGBA, uvScale, uvOffset blit.Vec2) *ListBuilder {
	s := NewSprite(textureID)
	s.Tint = tint
	s.UVScale = uvScale
	s.UVOffset = uvOffset
	return b.Object(s)
}

// Object appends any object payload with the current builder state.
func (b *ListBuilder) Object(t ObjectType) *ListBuilder {
	b.list.Append(Object{
		Type:      t,
		Transform: b.transform,
		Blend:     b.blend,
		Order:     b.order,
		Camera:    b.camera,
	})
	b.order++
	return b
}

// Build returns the constructed render list.
// The builder must not be used after Build is called.
func (b *ListBuilder) Build() *RenderList {
	list := b.list
	b.list = nil
	return list
}
