package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
	"svw.info/sudokugame/internal/validator"
)

// Generate builds a full random solution, then carves cells one at a time,
// keeping a removal only if the board still has exactly one solution.
// Checking after every single removal is what guarantees the result stays
// uniquely solvable; a final-only check could miss ambiguity introduced
// mid-carve. The same seed always yields the same puzzle.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	var full domain.Board
	fillDiagonalBoxes(rng, &full)
	if !fillRemaining(ctx, rng, &full) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		// a board whose diagonal boxes hold valid permutations always
		// completes, so reaching this means a programming error
		return nil, ports.Stats{Duration: time.Since(start)}, errors.New("could not complete a fresh board")
	}

	// 2) carve cells while preserving uniqueness: one shuffled pass over
	// all 81 positions, reverting any removal that makes the board ambiguous
	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	nodes := 0
	for _, pos := range rng.Perm(81) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c := pos/9, pos%9
		old := puz.Values[r][c]
		puz.Values[r][c] = 0
		n, st, err := g.Solver.CountSolutions(ctx, &domain.Board{Values: puz.Values}, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n == 1 {
			fixed[r][c] = false
		} else {
			puz.Values[r][c] = old
		}
	}
	puz.Fixed = fixed

	p := &domain.Puzzle{
		Seed:     seed,
		Board:    puz,
		Solution: full,
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillDiagonalBoxes writes a random permutation of 1-9 into each of the
// three diagonal 3x3 boxes. They share no row or column, so any
// permutations are mutually consistent and seed the search cheaply.
func fillDiagonalBoxes(rng *rand.Rand, b *domain.Board) {
	for box := 0; box < 3; box++ {
		perm := rng.Perm(9)
		for i, p := range perm {
			b.Values[box*3+i/3][box*3+i%3] = uint8(p + 1)
		}
	}
}

// fillRemaining completes the board by backtracking with a shuffled digit
// order per cell, so successive seeds yield different solved grids.
func fillRemaining(ctx context.Context, rng *rand.Rand, b *domain.Board) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if c == 9 {
			r, c = r+1, 0
		}
		if r == 9 {
			return true
		}
		if b.Values[r][c] != 0 {
			return dfs(r, c+1)
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		order := nums
		for _, v := range order {
			if validator.IsValidPlacement(b, r, c, v) {
				b.Values[r][c] = v
				if dfs(r, c+1) {
					return true
				}
				b.Values[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}
