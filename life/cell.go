// Package life implements Conway's Game of Life over an unbounded grid.
//
// The living set is a CellSet of coordinates; Step maps one generation to
// the next without touching its input.
package life

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Cell is a grid coordinate. It is comparable and used directly as a map
// key and as an ECS component tagging a cell's visual.
type Cell struct {
	X, Y int32
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int32) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Neighbors returns the 8 grid-adjacent coordinates of c.
func (c Cell) Neighbors() [8]Cell {
	return [8]Cell{
		{c.X - 1, c.Y - 1},
		{c.X - 1, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y},
		{c.X + 1, c.Y - 1},
		{c.X + 1, c.Y + 1},
	}
}

// Pack folds the coordinate into a single integer key.
func (c Cell) Pack() int64 {
	return int64(uint64(uint32(c.X))<<32 | uint64(uint32(c.Y)))
}

// Unpack reverses Pack.
func Unpack(key int64) Cell {
	return Cell{X: int32(uint64(key) >> 32), Y: int32(uint32(key))}
}

// compareRowMajor orders cells by Y, then X.
func compareRowMajor(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// CellSet is a set of living cells.
type CellSet map[Cell]struct{}

// NewCellSet returns a set holding cells. Duplicates collapse.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

func (s CellSet) Len() int {
	return len(s)
}

// Toggle flips c between alive and dead and reports whether it is alive
// afterwards.
func (s CellSet) Toggle(c Cell) bool {
	if s.Contains(c) {
		delete(s, c)
		return false
	}
	s[c] = struct{}{}
	return true
}

func (s CellSet) Clone() CellSet {
	if s == nil {
		return CellSet{}
	}
	return maps.Clone(s)
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(other CellSet) bool {
	return maps.Equal(s, other)
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	return slices.SortedFunc(maps.Keys(s), compareRowMajor)
}

// Bounds returns the inclusive bounding box of the set. ok is false for an
// empty set.
func (s CellSet) Bounds() (lo, hi Cell, ok bool) {
	for c := range s {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Translate returns a copy of the set shifted by (dx, dy).
func (s CellSet) Translate(dx, dy int32) CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[Cell{c.X + dx, c.Y + dy}] = struct{}{}
	}
	return out
}

// StartPattern is the glider the interactive demo opens with.
func StartPattern() CellSet {
	return NewCellSet(C(1, 2), C(2, 1), C(2, 0), C(1, 0), C(0, 0))
}
