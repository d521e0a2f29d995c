package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/domain"
)

var solution = [9][9]uint8{
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

// testPuzzle blanks the given cells out of the solved grid.
func testPuzzle(blanks ...domain.CellCoord) *domain.Puzzle {
	p := &domain.Puzzle{
		Board:    domain.Board{Values: solution},
		Solution: domain.Board{Values: solution},
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p.Board.Fixed[r][c] = true
		}
	}
	for _, b := range blanks {
		p.Board.Values[b.Row][b.Col] = 0
		p.Board.Fixed[b.Row][b.Col] = false
	}
	return p
}

func TestEnterFeedback(t *testing.T) {
	s := New(testPuzzle(domain.CellCoord{Row: 0, Col: 0}))

	// 5 is the solution digit, nothing conflicts
	status, err := s.Enter(0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.CellValid, status)

	// 6 already sits in row 0 (and column 0)
	status, err = s.Enter(0, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, domain.CellConflict, status)
}

func TestEnterRejectsGivens(t *testing.T) {
	s := New(testPuzzle(domain.CellCoord{Row: 0, Col: 0}))

	_, err := s.Enter(3, 3, 1)
	require.Error(t, err)
	// the given is untouched
	assert.Equal(t, uint8(7), s.Merged().Values[3][3])
}

func TestEnterRejectsBadInput(t *testing.T) {
	s := New(testPuzzle(domain.CellCoord{Row: 0, Col: 0}))

	_, err := s.Enter(0, 0, 0)
	require.Error(t, err)
	_, err = s.Enter(0, 0, 10)
	require.Error(t, err)
	_, err = s.Enter(9, 0, 1)
	require.Error(t, err)
}

func TestEraseAndClear(t *testing.T) {
	blanks := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	s := New(testPuzzle(blanks...))

	_, err := s.Enter(0, 0, 5)
	require.NoError(t, err)
	_, err = s.Enter(1, 1, 7)
	require.NoError(t, err)

	s.Erase(0, 0)
	assert.Equal(t, uint8(0), s.Merged().Values[0][0])
	assert.Equal(t, domain.CellEmpty, s.Status(0, 0))

	// erasing a given is a no-op
	s.Erase(2, 2)
	assert.Equal(t, uint8(8), s.Merged().Values[2][2])

	s.Clear()
	assert.Equal(t, uint8(0), s.Merged().Values[1][1])
}

func TestRevealShowsSolution(t *testing.T) {
	s := New(testPuzzle(domain.CellCoord{Row: 0, Col: 0}, domain.CellCoord{Row: 8, Col: 8}))

	s.Reveal()
	assert.True(t, s.Revealed())
	assert.Equal(t, solution, s.Merged().Values)
	assert.False(t, s.Won(), "revealed board is not a win")

	_, err := s.Enter(0, 0, 5)
	require.Error(t, err, "no entries while the solution is shown")

	// Clear starts the same puzzle over
	s.Clear()
	assert.False(t, s.Revealed())
	assert.Equal(t, uint8(0), s.Merged().Values[0][0])
}

func TestWon(t *testing.T) {
	blanks := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 4, Col: 4}}
	s := New(testPuzzle(blanks...))
	assert.False(t, s.Won())

	_, err := s.Enter(0, 0, 5)
	require.NoError(t, err)
	assert.False(t, s.Won())

	_, err = s.Enter(4, 4, 5)
	require.NoError(t, err)
	assert.True(t, s.Won())
}
