package scene

import "github.com/gogpu/blit"

// ObjectType is the payload of a render object. It is a sealed
// interface over the closed variant set {Sprite, Mesh, TexturedMesh};
// backends switch on the concrete type. Implementations outside this
// package are not possible.
type ObjectType interface {
	// isObjectType restricts the variant set to this package.
	isObjectType()
}

// Sprite is a textured unit quad. The quad spans (-0.5, -0.5) to
// (0.5, 0.5) in object-local space and is placed by the owning
// Object's Transform.
type Sprite struct {
	// TextureID is the key of the sprite's texture in the caller's
	// texture registry. A sprite whose ID is absent from the registry
	// is skipped, not an error.
	TextureID string

	// Tint is multiplied component-wise with every sampled texel.
	// A tint alpha <= 0 makes the sprite fully transparent and lets
	// backends skip it.
	Tint blit.RGBA

	// UVScale and UVOffset form the per-sprite affine UV transform:
	// uv = base*UVScale + UVOffset. The base coordinates are
	// bottom-left (0,1), bottom-right (1,1), top-right (1,0),
	// top-left (0,0): V grows downward in texture space while Y grows
	// upward in local space.
	UVScale  blit.Vec2
	UVOffset blit.Vec2

	// LocalOffset, LocalOffsetSin and LocalOffsetCos describe an
	// extra rotated offset applied by GPU backends in the vertex
	// stage. They are part of the contract but unused by the software
	// path.
	LocalOffset    blit.Vec2
	LocalOffsetSin float64
	LocalOffsetCos float64

	// EdgeFade is reserved; the software path ignores it.
	EdgeFade float64
}

// NewSprite returns a sprite with neutral defaults: white tint,
// identity UV transform, upright local offset rotation.
func NewSprite(textureID string) Sprite {
	return Sprite{
		TextureID:      textureID,
		Tint:           blit.White,
		UVScale:        blit.V2(1, 1),
		UVOffset:       blit.V2(0, 0),
		LocalOffsetCos: 1,
	}
}

// Topology tags the primitive layout of a mesh vertex buffer.
type Topology uint8

// TopologyTriangles is the only supported topology: every three
// consecutive vertices form one triangle.
const TopologyTriangles Topology = 0

// String returns the topology name.
func (t Topology) String() string {
	if t == TopologyTriangles {
		return "triangles"
	}
	return "unknown"
}

// MeshVertex is one vertex of an untextured mesh.
type MeshVertex struct {
	Position blit.Vec2
	Color    blit.RGBA
}

// Mesh is a raw colored vertex buffer. The software backend does not
// rasterize meshes; GPU backends do.
type Mesh struct {
	Vertices []MeshVertex
	Topology Topology
}

// TexturedVertex is one vertex of a textured mesh.
type TexturedVertex struct {
	Position blit.Vec2
	UV       blit.Vec2
	Color    blit.RGBA
}

// TexturedMesh is a raw textured vertex buffer. The software backend
// does not rasterize textured meshes; GPU backends do.
type TexturedMesh struct {
	TextureID string
	Vertices  []TexturedVertex
	Topology  Topology
}

func (Sprite) isObjectType()       {}
func (Mesh) isObjectType()         {}
func (TexturedMesh) isObjectType() {}
