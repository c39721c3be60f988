// Package ordering implements the position bookkeeping behind the course
// hierarchy: dense zero-based indexes within a sibling scope, single-splice
// drag moves, and the grouping pass used by bulk import and snapshot restore.
package ordering

// Renumber assigns dense positions 0..n-1 following the order of ids.
// It is total: any input, including an empty or duplicated slice, yields a
// mapping (a duplicated id keeps the last index it appears at).
func Renumber(order []uint) map[uint]int {
	positions := make(map[uint]int, len(order))
	for i, id := range order {
		positions[id] = i
	}
	return positions
}

// Diff returns the subset of Renumber(order) that differs from current, so
// callers can issue one persistence write per changed index and nothing more.
// Ids missing from current are always included.
func Diff(order []uint, current map[uint]int) map[uint]int {
	changed := make(map[uint]int)
	for id, pos := range Renumber(order) {
		if have, ok := current[id]; !ok || have != pos {
			changed[id] = pos
		}
	}
	return changed
}
