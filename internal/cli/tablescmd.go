package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/kociemba/internal/storage"
	"github.com/SeamusWaldron/kociemba/internal/tables"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the on-disk coordinate table cache",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build (or rebuild) the coordinate move and pruning tables",
	RunE:  runTablesBuild,
}

var tablesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cached tables, forcing a rebuild on next use",
	RunE:  runTablesClear,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesClearCmd)
}

func runTablesBuild(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cache := storage.NewTableCache(db)
	if err := cache.Clear(); err != nil {
		return err
	}

	start := time.Now()
	set, err := storage.LoadOrBuildSet(cache, tables.BuildOptions{Composite: composite})
	if err != nil {
		return fmt.Errorf("building tables: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("built tables in %s (eo=%d co=%d eslice=%d cp=%d udep=%d ep=%d)\n",
		elapsed, len(set.EOPrune), len(set.COPrune), len(set.ESlicePrune),
		len(set.CPPrune), len(set.UDEPPrune), len(set.EPPrune))
	return nil
}

func runTablesClear(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewTableCache(db).Clear(); err != nil {
		return err
	}
	fmt.Println("table cache cleared")
	return nil
}
