package ports

import (
	"context"
	"time"

	"svw.info/sudokugame/internal/domain"
)

// Stats captures the cost of a search operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs exhaustive search over a board. Solve reports unsolvable
// boards through the solved flag, not through err; err is reserved for
// malformed input and cancellation.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (out *domain.Board, solved bool, st Stats, err error)
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates uniquely-solvable puzzles from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step, if one is found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}
