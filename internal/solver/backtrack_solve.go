package solver

import (
	"context"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
	"svw.info/sudokugame/internal/validator"
)

// Solve completes the board by depth-first search, or reports it
// unsolvable. Unsolvable is a normal outcome (solved == false, err == nil);
// err is non-nil only for malformed boards or a canceled context.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, bool, ports.Stats, error) {
	start := time.Now()
	if err := b.CheckValues(); err != nil {
		return nil, false, ports.Stats{}, err
	}
	if !consistent(b) {
		return nil, false, ports.Stats{Duration: time.Since(start)}, nil
	}
	work := domain.Board{Values: b.Values}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&work)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if validator.IsValidPlacement(&work, r, c, v) {
				work.Values[r][c] = v
				if dfs() {
					return true
				}
				work.Values[r][c] = 0
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, false, st, err
	}
	if !solved {
		return nil, false, st, nil
	}
	return &domain.Board{Values: work.Values, Fixed: b.Fixed}, true, st, nil
}
