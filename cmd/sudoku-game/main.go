package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/generator"
	"svw.info/sudokugame/internal/hint"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/ui"
	"svw.info/sudokugame/internal/usecase"
	"svw.info/sudokugame/internal/validator"
)

var (
	logLevel string
	logger   = logrus.New()
)

// newService wires the core providers behind the usecase facade.
func newService() *usecase.Service {
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sudoku-game",
		Short: "Play, generate, and solve Sudoku puzzles",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := logrus.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				lvl = logrus.InfoLevel
			}
			logger.SetLevel(lvl)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")

	root.AddCommand(newPlayCmd(), newGenCmd(), newSolveCmd(), newServeCmd())
	return root
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Run: func(cmd *cobra.Command, args []string) {
			ui.New(newService(), logger).Run()
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve a puzzle given as an 81-character string ('.' or '0' = empty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := domain.ParseBoard(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			out, solved, st, err := newService().Solve(ctx, b)
			if err != nil {
				return err
			}
			if !solved {
				fmt.Println("No solution exists for this grid.")
				return nil
			}
			fmt.Print(out.Format())
			logger.WithFields(logrus.Fields{
				"nodes": st.Nodes,
				"dur":   st.Duration.Round(time.Millisecond),
			}).Debug("solved")
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
