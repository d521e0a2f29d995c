package generator

import (
	"svw.info/sudokugame/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution, using the
// provided Solver for the per-removal uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
