// Package paging is the pagination state engine.
//
// It is split by concern:
//
//   - registry.go: Registry, the keyed store of per-instance parameters
//     (current page accessor, items per page, collection length, async mode).
//   - accessor.go: PageAccessor and the PageVar / AccessorFunc implementations.
//   - slicer.go: SliceItems, SliceOrdered and Slice, which cut the current
//     page out of a collection and record the page size on the instance.
//   - ordered.go: Ordered, an insertion-ordered map, and DecodeCollection.
//   - sequence.go: Pages, the link sequence generator, plus ComputeRange and
//     the page number validators.
//   - errors.go: typed errors and IsNotRegistered / IsUnknownInstance.
//
// The engine does not observe collections. Callers report length and page
// size changes before the next Slice or Pages call that depends on them.
package paging
