package usecase

import (
	"context"
	"errors"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// Service fans the core operations out to their providers. Adapters (HTTP,
// GUI, CLI) depend on this facade rather than on concrete implementations.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, bool, ports.Stats, error) {
	if u.Solver == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	return u.Solver.CountSolutions(ctx, b, limit)
}

func (u *Service) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}
