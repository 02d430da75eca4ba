package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
)

// elemBytes is the size of the int64 elements grow appends.
const elemBytes = 8

var (
	growCount     int
	growAllocator string
)

func init() {
	cmd := newGrowCmd()
	cmd.Flags().IntVar(&growCount, "count", 1000, "Number of elements to append")
	cmd.Flags().StringVar(&growAllocator, "allocator", "heap", "Backing allocator: heap, arena or mmap")
	rootCmd.AddCommand(cmd)
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Append elements and report each reallocation",
		Long: `The grow command appends --count integers to an empty vector and prints
every capacity the vector passes through, followed by its metrics and the
usage of the backing allocator.

Example:
  vecstat grow --count 100000
  vecstat grow --count 5000 --allocator arena
  vecstat grow --allocator mmap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
	return cmd
}

// GrowReport is the result of a grow run.
type GrowReport struct {
	Allocator  string         `json:"allocator"`
	Count      int            `json:"count"`
	Capacities []int          `json:"capacities"`
	Metrics    vector.Metrics `json:"metrics"`
	Backing    any            `json:"backing"`
}

func runGrow() error {
	if growCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", growCount)
	}
	b, err := openBackend(growAllocator)
	if err != nil {
		return err
	}
	defer closeBackend(b)

	printVerbose("Appending %d elements on %s\n", growCount, b.name)

	v := vector.New(vector.WithAllocator[int64](b.alloc))
	defer v.Release()

	report := GrowReport{Allocator: b.name, Count: growCount}
	for i := range growCount {
		if err := v.PushBack(int64(i)); err != nil {
			return fmt.Errorf("append %d: %w", i, err)
		}
		if n := len(report.Capacities); n == 0 || report.Capacities[n-1] != v.Cap() {
			report.Capacities = append(report.Capacities, v.Cap())
			printVerbose("  len %d -> cap %d\n", v.Len(), v.Cap())
		}
	}
	report.Metrics = v.Metrics()
	report.Backing = b.stats()

	if jsonOut {
		return printJSON(report)
	}

	printInfo("Allocator: %s\n", report.Allocator)
	printInfo("Capacities: %v\n", report.Capacities)
	printMetrics(report.Metrics)
	printInfo("Element bytes: %s\n", formatBytes(report.Metrics.Cap*elemBytes))
	printInfo("Backing: %+v\n", report.Backing)
	return nil
}

// printMetrics prints vector metrics in text form.
func printMetrics(m vector.Metrics) {
	printInfo("Len: %s, Cap: %s (%.1f%% used)\n", formatNumber(m.Len), formatNumber(m.Cap), m.Utilization*100)
	printInfo("Reallocations: %d\n", m.Reallocations)
	printInfo("Moved: %s, Copied: %s, Shifted: %s\n",
		formatNumber(m.Moved), formatNumber(m.Copied), formatNumber(m.Shifted))
}
