package solver

import (
	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/validator"
)

// BacktrackingSolver is a straightforward recursive solver. It scans for
// the first empty cell in row-major order and tries digits 1-9 ascending,
// so its output is deterministic for a fixed input board.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func findEmpty(b *domain.Board) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// consistent reports whether the filled cells are mutually conflict-free.
// A board contradicting itself has no solution regardless of how its
// empty cells are filled, so both searches bail out up front.
func consistent(b *domain.Board) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 && !validator.IsValidPlacement(b, r, c, v) {
				return false
			}
		}
	}
	return true
}
