// Package game tracks a single play session: the immutable puzzle givens
// and a separate layer of user entries, so clearing entries never touches
// the puzzle itself.
package game

import (
	"errors"
	"fmt"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/validator"
)

type Session struct {
	puzzle   *domain.Puzzle
	entries  [9][9]uint8
	revealed bool
}

func New(p *domain.Puzzle) *Session {
	return &Session{puzzle: p}
}

func (s *Session) Puzzle() *domain.Puzzle { return s.puzzle }

// Merged returns the board as the player sees it: the full solution when
// revealed, otherwise givens overlaid with user entries.
func (s *Session) Merged() domain.Board {
	if s.revealed {
		return s.puzzle.Solution
	}
	b := s.puzzle.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.Fixed[r][c] && s.entries[r][c] != 0 {
				b.Values[r][c] = s.entries[r][c]
			}
		}
	}
	return b
}

// Enter writes a user digit and reports the resulting cell status.
// Writing to a given cell or passing a digit outside 1-9 is an error.
func (s *Session) Enter(row, col int, digit uint8) (domain.CellStatus, error) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return domain.CellEmpty, fmt.Errorf("cell (%d,%d) out of range", row, col)
	}
	if digit < 1 || digit > 9 {
		return domain.CellEmpty, fmt.Errorf("digit %d out of range", digit)
	}
	if s.revealed {
		return domain.CellEmpty, errors.New("solution is revealed; clear to keep playing")
	}
	if s.puzzle.Board.Fixed[row][col] {
		return domain.CellGiven, fmt.Errorf("cell (%d,%d) is a given", row, col)
	}
	s.entries[row][col] = digit
	return s.Status(row, col), nil
}

// Erase removes the user entry at a cell. Givens are unaffected.
func (s *Session) Erase(row, col int) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return
	}
	if !s.puzzle.Board.Fixed[row][col] {
		s.entries[row][col] = 0
	}
}

// Status classifies a cell against the current merged board. Validity is
// decided by the same placement check the solver prunes with, so the
// feedback shown to the player can never disagree with the search.
func (s *Session) Status(row, col int) domain.CellStatus {
	if s.puzzle.Board.Fixed[row][col] {
		return domain.CellGiven
	}
	merged := s.Merged()
	v := merged.Values[row][col]
	if v == 0 {
		return domain.CellEmpty
	}
	if validator.IsValidPlacement(&merged, row, col, v) {
		return domain.CellValid
	}
	return domain.CellConflict
}

// Clear wipes all user entries, keeping the same puzzle.
func (s *Session) Clear() {
	s.entries = [9][9]uint8{}
	s.revealed = false
}

// Reveal switches the visible board to the full solution.
func (s *Session) Reveal() { s.revealed = true }

func (s *Session) Revealed() bool { return s.revealed }

// Won reports whether the player filled the whole board to exactly the
// puzzle's solution. A revealed board does not count as a win.
func (s *Session) Won() bool {
	if s.revealed {
		return false
	}
	merged := s.Merged()
	return merged.Values == s.puzzle.Solution.Values
}
