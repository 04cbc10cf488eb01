package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
	"github.com/SeamusWaldron/kociemba/internal/notation"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

var solveSave bool

var solveCmd = &cobra.Command{
	Use:   "solve [moves]",
	Short: "Solve a scramble",
	Long: `Solve applies the given move sequence to a solved cube and finds a
move sequence that returns it to solved, using the two-phase search.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "record the solve to the history database")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := notation.ParseSequence(args[0])
	if err != nil {
		return err
	}

	cube := cubiecube.ApplySeq(cubiecube.Solved(), scramble)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := buildSolver(db)
	if err != nil {
		return err
	}

	result, err := s.Solve(cube, solver.DefaultOptions())
	if err != nil {
		if solveErr, ok := err.(*solver.Error); ok {
			return fmt.Errorf("%s: %s", solveErr.Kind, solveErr.Msg)
		}
		return err
	}

	solutionText := notation.FormatSequence(result.Solution)
	fmt.Println(solutionText)
	if verbose {
		fmt.Printf("moves=%d phase1=%d phase2=%d\n", len(result.Solution), len(result.Phase1), len(result.Phase2))
	}

	if solveSave {
		history := historyRepoFor(db)
		scrambleText := notation.FormatSequence(scramble)
		if _, err := history.Record(nil, scrambleText, solutionText, len(result.Phase1), len(result.Phase2)); err != nil {
			return fmt.Errorf("saving solve: %w", err)
		}
	}

	return nil
}
