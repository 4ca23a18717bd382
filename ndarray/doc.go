// Package ndarray provides a generic, dense, row-major N-dimensional array.
//
// An Array[T] has a fixed shape (one extent per axis, extents >= 0) and a
// flat backing slice; rank 0 holds exactly one element. Arrays handed to
// the combinator packages are treated as immutable: Data, Shape and Slice
// return copies, and Set / Place exist for arrays under construction.
//
// Axis decomposition:
//
//	x: shape [2 3 4]
//	x.Slice([]int{0}, Coord{1})   -> shape [3 4], x[1, :, :]
//	x.Slice([]int{2}, Coord{0})   -> shape [2 3], x[:, :, 0]
//	x.Transpose()                 -> shape [4 3 2]
//
// Coords and NextCoord enumerate coordinates in row-major order; every
// traversal in the toolkit uses that order, which is what keeps axis and
// split results deterministic.
//
// Errors are sentinels (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch,
// ErrBadAxis) wrapped with an operation tag; match them with errors.Is.
package ndarray
