package ordering

// Reorder moves movedID so it ends up at the index targetID held before the
// move, shifting the elements in between by one. It is a single splice, not
// a sort: every other element keeps its relative order.
//
// The operation is a no-op when movedID equals targetID or when either id is
// absent from order; the input slice is returned unchanged in that case so
// callers can detect it and skip persistence.
func Reorder(order []uint, movedID, targetID uint) []uint {
	if movedID == targetID {
		return order
	}

	from, to := -1, -1
	for i, id := range order {
		switch id {
		case movedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from < 0 || to < 0 {
		return order
	}

	rest := make([]uint, 0, len(order)-1)
	rest = append(rest, order[:from]...)
	rest = append(rest, order[from+1:]...)

	next := make([]uint, 0, len(order))
	next = append(next, rest[:to]...)
	next = append(next, movedID)
	next = append(next, rest[to:]...)
	return next
}
