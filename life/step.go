package life

import "slices"

// Step computes the next generation. Every living cell adds one to the
// tally of each of its 8 neighbors; a coordinate survives with a tally of
// 3, or of 2 if it is already alive. cur is not modified.
func Step(cur CellSet) CellSet {
	tally := make(map[Cell]uint32, len(cur)*8)
	for c := range cur {
		for _, n := range c.Neighbors() {
			tally[n]++
		}
	}

	next := make(CellSet, len(cur))
	for c, n := range tally {
		if n == 3 || (n == 2 && cur.Contains(c)) {
			next[c] = struct{}{}
		}
	}
	return next
}

// Diff returns the cells present only in next (born) and only in prev
// (died), each in row-major order.
func Diff(prev, next CellSet) (born, died []Cell) {
	for c := range next {
		if !prev.Contains(c) {
			born = append(born, c)
		}
	}
	for c := range prev {
		if !next.Contains(c) {
			died = append(died, c)
		}
	}
	slices.SortFunc(born, compareRowMajor)
	slices.SortFunc(died, compareRowMajor)
	return born, died
}
