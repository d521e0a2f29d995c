package domain

// CellStatus classifies a cell for presentation feedback.
type CellStatus int

const (
	CellEmpty    CellStatus = iota
	CellGiven               // part of the original puzzle, immutable
	CellValid               // user entry consistent with row/col/box
	CellConflict            // user entry duplicated in its row, col, or box
)

func (s CellStatus) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellGiven:
		return "given"
	case CellValid:
		return "valid"
	case CellConflict:
		return "conflict"
	default:
		return "unknown"
	}
}
