package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenumber(t *testing.T) {
	positions := Renumber([]uint{42, 7, 19})
	assert.Equal(t, map[uint]int{42: 0, 7: 1, 19: 2}, positions)
}

func TestRenumberEmpty(t *testing.T) {
	assert.Empty(t, Renumber(nil))
}

func TestDiffReturnsOnlyChangedPositions(t *testing.T) {
	// 7 already sits at index 1, so only 42 and 19 need writes.
	current := map[uint]int{42: 2, 7: 1, 19: 0}
	changed := Diff([]uint{42, 7, 19}, current)
	assert.Equal(t, map[uint]int{42: 0, 19: 2}, changed)
}

func TestDiffEmptyWhenOrderUnchanged(t *testing.T) {
	current := map[uint]int{1: 0, 2: 1, 3: 2}
	assert.Empty(t, Diff([]uint{1, 2, 3}, current))
}

func TestDiffIncludesUnknownIds(t *testing.T) {
	changed := Diff([]uint{1, 2}, map[uint]int{1: 0})
	assert.Equal(t, map[uint]int{2: 1}, changed)
}
