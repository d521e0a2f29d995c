package validator

import (
	"context"

	"svw.info/sudokugame/internal/domain"
)

// IsValidPlacement reports whether digit may sit at (row, col) without
// duplicating a digit elsewhere in its row, column, or 3x3 box. The cell
// itself is skipped, so the check holds whether or not the digit is
// already written there. Both the solver's pruning and the UI's keystroke
// feedback go through this one function.
//
// Callers guarantee row/col in 0..8 and digit in 1..9; out-of-range
// indices panic via the array bounds check.
func IsValidPlacement(b *domain.Board, row, col int, digit uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && b.Values[row][i] == digit {
			return false
		}
		if i != row && b.Values[i][col] == digit {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && b.Values[r][c] == digit {
				return false
			}
		}
	}
	return true
}

// FastValidator scans a whole board for rule violations using unit bitmasks.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the board is conflict-free and lists the cells
// whose value repeats an earlier one in the same row, column, or box.
// Empty cells are ignored.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if err := b.CheckValues(); err != nil {
		return false, nil, err
	}
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
