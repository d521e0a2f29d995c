package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	s := "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
	b, err := ParseBoard(s)
	require.NoError(t, err)
	assert.EqualValues(t, 5, b.Values[0][0])
	assert.EqualValues(t, 0, b.Values[0][2])
	assert.EqualValues(t, 9, b.Values[8][8])
	assert.Equal(t, 30, b.FilledCount())
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("123")
	require.Error(t, err)

	_, err = ParseBoard(strings.Repeat("x", 81))
	require.Error(t, err)
}

func TestCheckValues(t *testing.T) {
	var b Board
	require.NoError(t, b.CheckValues())

	b.Values[2][2] = 10
	require.Error(t, b.CheckValues())
}

func TestFormatRoundTrips(t *testing.T) {
	var b Board
	b.Values[0][0] = 5
	out := b.Format()
	assert.Contains(t, out, "| 5 ")
	assert.Contains(t, out, "+-------+-------+-------+")
}
