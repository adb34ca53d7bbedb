// Package spatial implements the uniform-grid spatial-hash accelerator
// shared by the constraint solver and the curve evolver.
package spatial

import "math"

// Positioned is the capability a spatial Index requires of its payload:
// just a 2D position, never a common base class.
type Positioned interface {
	Pos() (x, y float64)
}

// cellKey packs two 32-bit cell coordinates into one 64-bit map key.
type cellKey int64

func makeCellKey(ix, iy int32) cellKey {
	return cellKey(int64(ix)<<32 | int64(uint32(iy)))
}

// Index is a uniform-grid spatial hash keyed by integer cell coordinate.
// It is not owned across ticks by any caller; callers rebuild it every
// tick from current positions.
type Index[T Positioned] struct {
	cellSize float64
	buckets  map[cellKey][]T
}

// New creates an Index with the given cell size (typical value 32).
func New[T Positioned](cellSize float64) *Index[T] {
	if cellSize <= 0 {
		cellSize = 32
	}
	return &Index[T]{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]T),
	}
}

// Clear drops all buckets.
func (idx *Index[T]) Clear() {
	for k := range idx.buckets {
		delete(idx.buckets, k)
	}
}

// Insert appends item to the bucket for its current position, preserving
// insertion order within the bucket.
func (idx *Index[T]) Insert(item T) {
	x, y := item.Pos()
	key := idx.cellOf(x, y)
	idx.buckets[key] = append(idx.buckets[key], item)
}

// Rebuild clears the index and reinserts every item, in order.
func (idx *Index[T]) Rebuild(items []T) {
	idx.Clear()
	for _, it := range items {
		idx.Insert(it)
	}
}

func (idx *Index[T]) cellOf(x, y float64) cellKey {
	ix := int32(floorDiv(x, idx.cellSize))
	iy := int32(floorDiv(y, idx.cellSize))
	return makeCellKey(ix, iy)
}

// floorDiv returns floor(v/cell) as the cell coordinate.
func floorDiv(v, cell float64) float64 {
	return math.Floor(v / cell)
}

// QueryNeighbors returns the union of the nine cells surrounding (x, y), in
// insertion order within each bucket, buckets visited in a fixed scan order
func (idx *Index[T]) QueryNeighbors(x, y float64) []T {
	cx := int32(floorDiv(x, idx.cellSize))
	cy := int32(floorDiv(y, idx.cellSize))

	var out []T
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			key := makeCellKey(cx+dx, cy+dy)
			if bucket, ok := idx.buckets[key]; ok {
				out = append(out, bucket...)
			}
		}
	}
	return out
}

// QueryRadius returns all items within Euclidean distance r of (x, y),
// scanning floor(r/cellSize)+1 cells in each direction and filtering by
// exact distance.
func (idx *Index[T]) QueryRadius(x, y, r float64) []T {
	if r <= 0 {
		return nil
	}
	cellRadius := int32(r/idx.cellSize) + 1
	cx := int32(floorDiv(x, idx.cellSize))
	cy := int32(floorDiv(y, idx.cellSize))
	rSq := r * r

	var out []T
	for dy := -cellRadius; dy <= cellRadius; dy++ {
		for dx := -cellRadius; dx <= cellRadius; dx++ {
			key := makeCellKey(cx+dx, cy+dy)
			bucket, ok := idx.buckets[key]
			if !ok {
				continue
			}
			for _, item := range bucket {
				ix, iy := item.Pos()
				ddx, ddy := ix-x, iy-y
				if ddx*ddx+ddy*ddy <= rSq {
					out = append(out, item)
				}
			}
		}
	}
	return out
}

// Len returns the total number of items currently indexed.
func (idx *Index[T]) Len() int {
	n := 0
	for _, b := range idx.buckets {
		n += len(b)
	}
	return n
}
