package ordering

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope tells which sibling list a drag touches. Module and lesson order are
// independent: a lesson drag must never rewrite module positions and vice
// versa, so every drag id carries its scope as a prefix.
type Scope string

const (
	ScopeModule Scope = "module"
	ScopeLesson Scope = "lesson"
)

// ParseDragID splits a drag tag like "module-12" or "lesson-7" into its
// scope and numeric entity id.
func ParseDragID(tag string) (Scope, uint, error) {
	prefix, rawID, found := strings.Cut(tag, "-")
	if !found {
		return "", 0, fmt.Errorf("malformed drag id %q", tag)
	}

	scope := Scope(prefix)
	if scope != ScopeModule && scope != ScopeLesson {
		return "", 0, fmt.Errorf("unknown drag scope %q", prefix)
	}

	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || id == 0 {
		return "", 0, fmt.Errorf("invalid entity id in drag id %q", tag)
	}

	return scope, uint(id), nil
}
