package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
)

func newGenCmd() *cobra.Command {
	var (
		numPuzzles int
		seed       int64
		outputFile string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more uniquely-solvable Sudoku puzzles.

Examples:
  sudoku-game gen
  sudoku-game gen -n 5
  sudoku-game gen --seed 12345 -o puzzles.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService()
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			var puzzles []*domain.Puzzle
			for i := 0; i < numPuzzles; i++ {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				p, st, err := svc.Generate(ctx, seed+int64(i))
				cancel()
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				logger.WithFields(logrus.Fields{
					"seed":   p.Seed,
					"givens": p.Board.FilledCount(),
					"nodes":  st.Nodes,
					"dur":    st.Duration.Round(time.Millisecond),
				}).Debug("generated")

				if outputFile != "" {
					puzzles = append(puzzles, p)
					continue
				}
				fmt.Printf("Puzzle #%d (seed %d, givens %d):\n", i+1, p.Seed, p.Board.FilledCount())
				fmt.Println(p.Board.Format())
				fmt.Println("Solution:")
				fmt.Println(p.Solution.Format())
			}

			if outputFile != "" {
				name := outputFile
				if filepath.Ext(name) != ".html" {
					name += ".html"
				}
				if err := writeHTML(name, puzzles); err != nil {
					return fmt.Errorf("failed to write HTML file: %w", err)
				}
				fmt.Printf("Generated %d puzzle(s) in %s\n", len(puzzles), name)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles (0 = time-based)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Generation timeout per puzzle")
	return cmd
}

// writeHTML renders each puzzle and its solution on a printable page.
func writeHTML(filename string, puzzles []*domain.Puzzle) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprint(f, htmlHeader); err != nil {
		return err
	}
	for i, p := range puzzles {
		_, err = fmt.Fprintf(f, `    <div class="page">
        <h1>Sudoku Puzzle #%d</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, boardToHTML(&p.Board), boardToHTML(&p.Solution))
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(f, "</body>\n</html>\n")
	return err
}

func boardToHTML(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString(`<div class="sudoku-grid"><table>`)
	for r := 0; r < 9; r++ {
		sb.WriteString("<tr>")
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(`<td class="empty">&middot;</td>`)
			} else {
				fmt.Fprintf(&sb, "<td>%d</td>", v)
			}
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table></div>")
	return sb.String()
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Sudoku Puzzles</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .page { page-break-after: always; padding: 40px; }
        .page:last-child { page-break-after: auto; }
        h1 { text-align: center; }
        .sudoku-grid { display: inline-block; border: 3px solid #000; font-size: 24px; }
        .sudoku-grid table { border-collapse: collapse; }
        .sudoku-grid td { width: 40px; height: 40px; text-align: center; border: 1px solid #333; }
        .sudoku-grid td.empty { color: #ccc; }
        .sudoku-grid tr:nth-child(3n) td { border-bottom: 2px solid #000; }
        .sudoku-grid td:nth-child(3n) { border-right: 2px solid #000; }
    </style>
</head>
<body>
`
