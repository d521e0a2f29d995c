package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 9, 1, 7},
}

func TestSolveSampleGrid(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, solved, st, err := s.Solve(ctx, &domain.Board{Values: sample})
	require.NoError(t, err)
	require.True(t, solved, "nodes=%d dur=%v", st.Nodes, st.Duration)
	assert.Equal(t, sampleSolution, out.Values)
}

func TestSolveEmptyGridDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	first, solved, _, err := s.Solve(ctx, &domain.Board{})
	require.NoError(t, err)
	require.True(t, solved)
	assert.True(t, first.Full())

	ok, conflicts, err := validator.New().Validate(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)

	// fixed digit-try order makes the result reproducible
	second, solved, _, err := s.Solve(ctx, &domain.Board{})
	require.NoError(t, err)
	require.True(t, solved)
	assert.Equal(t, first.Values, second.Values)
}

func TestSolveIdempotentOnSolvedGrid(t *testing.T) {
	s := NewBacktrackingSolver()

	out, solved, _, err := s.Solve(context.Background(), &domain.Board{Values: sampleSolution})
	require.NoError(t, err)
	require.True(t, solved)
	assert.Equal(t, sampleSolution, out.Values)
}

func TestSolveContradictoryGridUnsolvable(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][5] = 5

	s := NewBacktrackingSolver()
	out, solved, _, err := s.Solve(context.Background(), &b)
	require.NoError(t, err, "unsolvable is an outcome, never an error")
	assert.False(t, solved)
	assert.Nil(t, out)
}

func TestSolveRejectsMalformedBoard(t *testing.T) {
	var b domain.Board
	b.Values[4][4] = 13

	s := NewBacktrackingSolver()
	_, _, _, err := s.Solve(context.Background(), &b)
	require.Error(t, err)
}

func TestCountSolutions(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	t.Run("solved grid has one", func(t *testing.T) {
		n, _, err := s.CountSolutions(ctx, &domain.Board{Values: sampleSolution}, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("empty grid stops at limit", func(t *testing.T) {
		n, _, err := s.CountSolutions(ctx, &domain.Board{}, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("contradictory grid has none", func(t *testing.T) {
		var b domain.Board
		b.Values[0][0] = 5
		b.Values[0][5] = 5
		n, _, err := s.CountSolutions(ctx, &b, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("limit below one rejected", func(t *testing.T) {
		_, _, err := s.CountSolutions(ctx, &domain.Board{}, 0)
		require.Error(t, err)
	})
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewBacktrackingSolver()
	_, solved, _, err := s.Solve(ctx, &domain.Board{})
	require.Error(t, err)
	assert.False(t, solved)
}
