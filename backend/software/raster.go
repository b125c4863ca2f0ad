package software

import (
	"math"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/scene"
)

// vertex is one screen-space triangle corner with its UV attribute.
type vertex struct {
	pos blit.Vec2
	uv  blit.Vec2
}

// edgeFunction returns the doubled signed area of the triangle (a, b, c).
// Its sign tells which side of edge a-b the point c lies on; the
// rasterizer uses it both for the degeneracy test and for barycentric
// weights.
func edgeFunction(a, b, c blit.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// rasterizeTriangle fills one triangle of a sprite quad.
//
// For every pixel center inside the clamped bounding box, three
// edge-function weights are scaled by the inverse signed area; the
// pixel is inside iff all three are >= 0. The test works for either
// winding because a negative area flips the weight signs too. Edge
// ties between the two triangles of one quad are not deduplicated;
// the resulting sub-pixel over/under-draw at the shared diagonal is
// accepted and matches reference output.
//
// Rows of the bounding box may run on the worker pool: rows are
// disjoint, so the result is identical to a sequential pass.
func (b *Backend) rasterizeTriangle(v0, v1, v2 vertex, tex *Texture, tint blit.RGBA, blend scene.BlendMode) {
	area := edgeFunction(v0.pos, v1.pos, v2.pos)
	if area == 0 {
		// Degenerate triangle.
		return
	}
	invArea := 1 / area

	minX := int(math.Floor(min3(v0.pos.X, v1.pos.X, v2.pos.X)))
	maxX := int(math.Ceil(max3(v0.pos.X, v1.pos.X, v2.pos.X)))
	minY := int(math.Floor(min3(v0.pos.Y, v1.pos.Y, v2.pos.Y)))
	maxY := int(math.Ceil(max3(v0.pos.Y, v1.pos.Y, v2.pos.Y)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > b.width {
		maxX = b.width
	}
	if maxY > b.height {
		maxY = b.height
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	texW := tex.Width()
	texH := tex.Height()

	b.pool.ForRows(minY, maxY, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			py := float64(y) + 0.5
			rowBase := y * b.width
			for x := minX; x < maxX; x++ {
				p := blit.V2(float64(x)+0.5, py)

				w0 := edgeFunction(v1.pos, v2.pos, p) * invArea
				w1 := edgeFunction(v2.pos, v0.pos, p) * invArea
				w2 := edgeFunction(v0.pos, v1.pos, p) * invArea
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}

				// Interpolate UV and wrap by fractional part:
				// unconditional repeat sampling.
				uv := blit.V2(
					w0*v0.uv.X+w1*v1.uv.X+w2*v2.uv.X,
					w0*v0.uv.Y+w1*v1.uv.Y+w2*v2.uv.Y,
				).Fract()

				tx := int(uv.X*float64(texW)) % texW
				ty := int(uv.Y*float64(texH)) % texH

				texel := tex.texel(tx, ty)
				if texel.A == 0 {
					continue
				}

				src := texel.Mul(tint)
				idx := rowBase + x
				b.fb[idx] = composite(blit.Unpack(b.fb[idx]), src, blend).Pack()
			}
		}
	})
}

// composite blends a tinted source color over the destination pixel.
// All math is in normalized [0,1] floats; Pack clamps again at store
// time.
func composite(dst, src blit.RGBA, mode scene.BlendMode) blit.RGBA {
	a := src.A
	switch mode {
	case scene.BlendAdd:
		return blit.RGBA{
			R: math.Min(1, dst.R+src.R*a),
			G: math.Min(1, dst.G+src.G*a),
			B: math.Min(1, dst.B+src.B*a),
			A: math.Min(1, dst.A+a),
		}
	case scene.BlendMultiply:
		return blit.RGBA{
			R: dst.R*(1-a) + dst.R*src.R*a,
			G: dst.G*(1-a) + dst.G*src.G*a,
			B: dst.B*(1-a) + dst.B*src.B*a,
			A: a + dst.A*(1-a),
		}
	case scene.BlendSubtract:
		return blit.RGBA{
			R: math.Max(0, dst.R-src.R*a),
			G: math.Max(0, dst.G-src.G*a),
			B: math.Max(0, dst.B-src.B*a),
			A: a + dst.A*(1-a),
		}
	default:
		// Source-over.
		return blit.RGBA{
			R: src.R*a + dst.R*(1-a),
			G: src.G*a + dst.G*(1-a),
			B: src.B*a + dst.B*(1-a),
			A: a + dst.A*(1-a),
		}
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
