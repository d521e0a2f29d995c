package domain

import (
	"fmt"
	"strings"
)

// Board holds current values and which cells are fixed givens.
// Values are 0-9 where 0 denotes an empty cell.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested next move for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
}

// Puzzle pairs a carved board with the unique solution it resolves to.
type Puzzle struct {
	Seed     int64 `json:"seed,omitempty"`
	Board    Board `json:"board"`
	Solution Board `json:"solution"`
}

// CheckValues rejects boards carrying digits outside 0-9.
// Out-of-range values would make search results silently wrong.
func (b *Board) CheckValues() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return fmt.Errorf("invalid digit %d at row %d col %d", b.Values[r][c], r, c)
			}
		}
	}
	return nil
}

// Full reports whether every cell holds a digit.
func (b *Board) Full() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// ParseBoard reads an 81-character string, '.' or '0' for empty cells.
func ParseBoard(s string) (*Board, error) {
	if len(s) != 81 {
		return nil, fmt.Errorf("board string must be 81 characters, got %d", len(s))
	}
	var b Board
	for i := 0; i < 81; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			b.Values[i/9][i%9] = uint8(ch - '0')
		default:
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return &b, nil
}

// Format renders the board with grid lines for terminal output.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)
	for r := 0; r < 9; r++ {
		sb.WriteString("| ")
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			sb.WriteByte(' ')
			if (c+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")
		if (r+1)%3 == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
