package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/validator"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell with exactly one candidate digit.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if err := b.CheckValues(); err != nil {
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(b, r, c)
			if ok {
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %d fits here", v),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if validator.IsValidPlacement(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
