package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/domain"
)

var solved = [9][9]uint8{
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

func TestHintFindsNakedSingle(t *testing.T) {
	b := domain.Board{Values: solved}
	b.Values[4][4] = 0 // only 5 can go back here

	h, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []domain.CellCoord{{Row: 4, Col: 4}}, h.Cells)
	assert.Contains(t, h.Message, "5")
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.False(t, found, "every cell of an empty board has nine candidates")
}

func TestHintRejectsMalformedBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 11

	_, _, err := NewSingles().Hint(context.Background(), &b)
	require.Error(t, err)
}
