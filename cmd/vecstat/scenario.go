package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "scenario",
		Short: "Walk through emplace, erase and resize on a small vector",
		Long: `The scenario command appends 1, 2 and 3 to an empty vector, emplaces 9
at position 1, erases position 0 and resizes to 5, printing the vector after
each step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario()
		},
	})
}

// ScenarioStep is the state of the vector after one operation.
type ScenarioStep struct {
	Op       string `json:"op"`
	Elements []int  `json:"elements"`
	Len      int    `json:"len"`
	Cap      int    `json:"cap"`
}

func runScenario() error {
	v := vector.New[int]()
	defer v.Release()

	var steps []ScenarioStep
	record := func(op string) {
		steps = append(steps, ScenarioStep{
			Op:       op,
			Elements: append([]int{}, v.Slice()...),
			Len:      v.Len(),
			Cap:      v.Cap(),
		})
	}

	record("new")
	for _, x := range []int{1, 2, 3} {
		if err := v.PushBack(x); err != nil {
			return err
		}
		record(fmt.Sprintf("push %d", x))
	}

	if _, err := v.Emplace(1, vector.Value(9)); err != nil {
		return err
	}
	record("emplace(1, 9)")

	if _, err := v.Erase(0); err != nil {
		return err
	}
	record("erase(0)")

	if err := v.Resize(5); err != nil {
		return err
	}
	record("resize(5)")

	if jsonOut {
		return printJSON(steps)
	}
	for _, s := range steps {
		printInfo("%-14s %v len=%d cap=%d\n", s.Op, s.Elements, s.Len, s.Cap)
	}
	printVerbose("Reallocations: %d\n", v.Metrics().Reallocations)
	return nil
}
