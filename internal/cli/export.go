package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/notation"
	"github.com/SeamusWaldron/kociemba/internal/storage"
	"github.com/SeamusWaldron/kociemba/pkg/types"
)

var (
	exportScrambleID string
	exportFormat     string
	exportOutput     string
	exportLast       bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a recorded scramble/solution",
	Long:  `Export a recorded scramble and its solution in text or JSON format.`,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export the solution moves for a recorded scramble",
	Long: `Export the solution move sequence from history in text or JSON format.

Examples:
  kociemba export moves --last
  kociemba export moves --id <scramble_id> --format json
  kociemba export moves --id <scramble_id> --format txt -o moves.txt`,
	RunE: runExportMoves,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportScrambleID, "id", "", "scramble ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "export the most recently recorded scramble")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "export format (txt, json)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	if exportScrambleID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	history := historyRepoFor(db)

	var record *storage.ScrambleRecord
	if exportLast {
		records, err := history.List(1)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}
		if len(records) == 0 {
			return fmt.Errorf("no scrambles recorded")
		}
		record = &records[0]
	} else {
		record, err = history.Get(exportScrambleID)
		if err != nil {
			return fmt.Errorf("failed to get scramble %s: %w", exportScrambleID, err)
		}
		if record == nil {
			return fmt.Errorf("no scramble found with id %s", exportScrambleID)
		}
	}

	solution, err := notation.ParseSequence(record.SolutionText)
	if err != nil {
		return fmt.Errorf("stored solution is malformed: %w", err)
	}

	var output string
	switch strings.ToLower(exportFormat) {
	case "txt":
		output = notation.FormatSequence(solution)

	case "json":
		type exportJSON struct {
			ScrambleID  string       `json:"scramble_id"`
			CreatedAt   string       `json:"created_at"`
			Scramble    string       `json:"scramble"`
			Solution    string       `json:"solution"`
			Phase1Moves int          `json:"phase1_moves"`
			Phase2Moves int          `json:"phase2_moves"`
			Moves       []types.Move `json:"moves"`
		}

		data, err := json.MarshalIndent(exportJSON{
			ScrambleID:  record.ScrambleID,
			CreatedAt:   record.CreatedAt.Format(time.RFC3339),
			Scramble:    record.ScrambleText,
			Solution:    record.SolutionText,
			Phase1Moves: record.Phase1Moves,
			Phase2Moves: record.Phase2Moves,
			Moves:       notation.ToWireMoves(solution),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("exported %d solution moves to %s\n", len(solution), exportOutput)
	return nil
}
