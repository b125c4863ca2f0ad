// Package software implements the pure-CPU rendering backend.
//
// The software backend reproduces, pixel for pixel, the visual
// contract the GPU backends implement in hardware: sprites are
// transformed by an orthographic projection, split into two triangles,
// rasterized with barycentric inside tests, sampled with fractional
// repeat wrapping, tinted, and alpha-composited in strict list order.
// A Draw call fully completes, including presentation, before it
// returns.
//
// Output is deterministic. Internal row parallelism only ever splits
// the rows of a single triangle, so results are bit-identical to a
// sequential execution.
//
// Import for side effects to register the backend:
//
//	import _ "github.com/gogpu/blit/backend/software"
package software
