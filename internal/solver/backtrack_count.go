package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
	"svw.info/sudokugame/internal/validator"
)

// CountSolutions counts completions of the board, stopping once limit
// solutions are found. limit=2 distinguishes a unique puzzle from an
// ambiguous one without enumerating the full solution space.
func (s *BacktrackingSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit < 1 {
		return 0, ports.Stats{}, errors.New("limit must be at least 1")
	}
	if err := b.CheckValues(); err != nil {
		return 0, ports.Stats{}, err
	}
	if !consistent(b) {
		return 0, ports.Stats{Duration: time.Since(start)}, nil
	}
	work := domain.Board{Values: b.Values}
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= limit {
			return true // stop early
		}
		r, c, ok := findEmpty(&work)
		if !ok {
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if validator.IsValidPlacement(&work, r, c, v) {
				work.Values[r][c] = v
				if dfs() {
					return true
				}
				// dfs false means "keep looking": undo and try the
				// next digit so further solutions are counted too
				work.Values[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
