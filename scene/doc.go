// Package scene defines the frame description consumed by rendering
// backends: the RenderList, its Objects, and their blend modes.
//
// A RenderList is pure data with no behavior. The caller builds one per
// frame (directly, through a ListBuilder, or recycled through a
// ListPool), passes it to backend.Backend.Draw, and drops it after the
// call returns. Object order within the list is the compositing order:
// later objects draw over earlier ones, painter's algorithm, no depth
// sort.
package scene
