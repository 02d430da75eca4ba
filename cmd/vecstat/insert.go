package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
)

var (
	insertCount int
	insertAt    string
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().IntVar(&insertCount, "count", 1000, "Number of elements to insert")
	cmd.Flags().StringVar(&insertAt, "at", "front", "Insert position: front, middle or back")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Insert elements at a fixed position and report shifting",
		Long: `The insert command inserts --count integers one at a time at the front,
middle or back of a vector and reports how many elements were shifted within
the block versus moved by reallocation.

Example:
  vecstat insert --count 10000 --at front
  vecstat insert --at middle --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert()
		},
	}
}

// InsertReport is the result of an insert run.
type InsertReport struct {
	At      string         `json:"at"`
	Count   int            `json:"count"`
	Metrics vector.Metrics `json:"metrics"`
}

func runInsert() error {
	var pos func(n int) int
	switch insertAt {
	case "front":
		pos = func(int) int { return 0 }
	case "middle":
		pos = func(n int) int { return n / 2 }
	case "back":
		pos = func(n int) int { return n }
	default:
		return fmt.Errorf("unknown position %q (want front, middle or back)", insertAt)
	}
	if insertCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", insertCount)
	}

	v := vector.New[int]()
	defer v.Release()

	start := time.Now()
	for i := range insertCount {
		if _, err := v.Insert(pos(v.Len()), i); err != nil {
			return fmt.Errorf("insert %d: %w", i, err)
		}
	}
	printVerbose("Inserted %d elements in %v\n", insertCount, time.Since(start))

	report := InsertReport{At: insertAt, Count: insertCount, Metrics: v.Metrics()}
	if jsonOut {
		return printJSON(report)
	}
	printInfo("Position: %s\n", report.At)
	printMetrics(report.Metrics)
	return nil
}
