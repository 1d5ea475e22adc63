package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-dsbasics/Sorts"
)

func (a *app) sortCommand() *cobra.Command {
	var values []int
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Merge sort a list of ints and print it before and after",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "before: %v\n", values)
			Sorts.MergeSort(values)
			a.log.Named("sort").Debug("sorted", zap.Int("len", len(values)))
			fmt.Fprintf(out, "after: %v\n", values)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&values, "values", []int{5, 0, 1, 7, 3, 2, 4, 9, 6, 8}, "values to sort")
	return cmd
}
