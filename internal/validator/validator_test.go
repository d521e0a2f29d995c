package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/domain"
)

func TestIsValidPlacementRowColBox(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 5

	assert.False(t, IsValidPlacement(&b, 0, 4, 5), "duplicate in row")
	assert.False(t, IsValidPlacement(&b, 4, 0, 5), "duplicate in column")
	assert.False(t, IsValidPlacement(&b, 1, 1, 5), "duplicate in box")
	assert.True(t, IsValidPlacement(&b, 4, 4, 5), "unrelated cell")
	assert.True(t, IsValidPlacement(&b, 0, 4, 6), "different digit")
}

func TestIsValidPlacementSkipsOwnCell(t *testing.T) {
	var b domain.Board
	b.Values[2][3] = 7

	// the cell already holding the digit must not conflict with itself
	assert.True(t, IsValidPlacement(&b, 2, 3, 7))
	assert.False(t, IsValidPlacement(&b, 2, 8, 7))
}

func TestIsValidPlacementConsultsLiveState(t *testing.T) {
	// two 5s already in row 0: placing 5 anywhere else in that row must
	// stay invalid even though the board itself is contradictory
	var b domain.Board
	b.Values[0][0] = 5
	b.Values[0][5] = 5

	for c := 1; c < 9; c++ {
		if c == 5 {
			continue
		}
		assert.False(t, IsValidPlacement(&b, 0, c, 5), "col %d", c)
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	var b domain.Board
	b.Values[3][2] = 4
	b.Values[3][7] = 4

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.CellCoord{Row: 3, Col: 7})
}

func TestValidateCleanBoard(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 1
	b.Values[4][4] = 1
	b.Values[8][8] = 1

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateRejectsOutOfRangeDigit(t *testing.T) {
	var b domain.Board
	b.Values[0][0] = 12

	_, _, err := New().Validate(context.Background(), &b)
	require.Error(t, err)
}
