package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/randcube"
	"github.com/SeamusWaldron/kociemba/internal/solver"
)

var benchCount int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver against a batch of random states",
	Long: `bench samples benchCount uniform random valid cubes and solves each
one, reporting solve-length statistics and average wall-clock time.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchCount, "count", 100, "number of random states to solve")
}

func runBench(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := buildSolver(db)
	if err != nil {
		return err
	}

	var totalMoves, minMoves, maxMoves int
	minMoves = -1
	start := time.Now()

	for i := 0; i < benchCount; i++ {
		cube := randcube.Sample(uint32(i))
		result, err := s.Solve(cube, solver.DefaultOptions())
		if err != nil {
			return fmt.Errorf("seed %d: %w", i, err)
		}
		n := len(result.Solution)
		totalMoves += n
		if minMoves == -1 || n < minMoves {
			minMoves = n
		}
		if n > maxMoves {
			maxMoves = n
		}
	}

	elapsed := time.Since(start)
	avg := float64(totalMoves) / float64(benchCount)
	fmt.Printf("solved %d cubes in %s (%.2fms/cube)\n", benchCount, elapsed, float64(elapsed.Milliseconds())/float64(benchCount))
	fmt.Printf("move count: min=%d max=%d avg=%.2f\n", minMoves, maxMoves, avg)
	return nil
}
