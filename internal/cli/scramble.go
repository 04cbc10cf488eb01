package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/notation"
	"github.com/SeamusWaldron/kociemba/internal/randcube"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

var (
	scrambleSeed  int64
	scrambleUseSeed bool
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random-state scramble",
	Long: `Generate a uniform random-state scramble by sampling a valid cube and
solving it, then inverting the solution. Pass --seed for a reproducible
scramble; without it a scramble is drawn from the current time.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "PRNG seed for reproducible output")
	scrambleCmd.Flags().BoolVar(&scrambleUseSeed, "use-seed", false, "treat --seed as authoritative even when it is 0")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "record the scramble to the history database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 && !scrambleUseSeed {
		seed = int64(timeSeed())
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := buildSolver(db)
	if err != nil {
		return err
	}

	cube := randcube.Sample(uint32(seed))
	result, err := s.Solve(cube, solver.DefaultOptions())
	if err != nil {
		return fmt.Errorf("sampled cube did not solve: %w", err)
	}

	scrambleText := notation.FormatSequence(result.Scramble)
	solutionText := notation.FormatSequence(result.Solution)

	fmt.Println(scrambleText)
	if verbose {
		fmt.Printf("seed=%d moves=%d phase1=%d phase2=%d\n", seed, len(result.Scramble), len(result.Phase1), len(result.Phase2))
	}

	if scrambleSave {
		history := historyRepoFor(db)
		if _, err := history.Record(&seed, scrambleText, solutionText, len(result.Phase1), len(result.Phase2)); err != nil {
			return fmt.Errorf("saving scramble: %w", err)
		}
	}

	return nil
}
