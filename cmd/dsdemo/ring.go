package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-dsbasics/Queues"
)

func (a *app) ringCommand() *cobra.Command {
	var (
		capacity, takes int
		puts, putsAfter []int
	)
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Put, take, then put again on a fixed capacity ring and print it after each phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := Queues.NewIntRing(capacity, Queues.WithLogger(a.log.Named("ring")))
			if err != nil {
				return errors.Wrap(err, "making ring")
			}
			out := cmd.OutOrStdout()
			for _, v := range puts {
				if !r.Put(v) {
					fmt.Fprintf(out, "put %d: full\n", v)
				}
			}
			fmt.Fprintf(out, "ring: %v\n", r)
			for i := 0; i < takes; i++ {
				if v, ok := r.Take(); ok {
					fmt.Fprintf(out, "take: %d\n", v)
				} else {
					fmt.Fprintln(out, "take: empty")
				}
			}
			for _, v := range putsAfter {
				if !r.Put(v) {
					fmt.Fprintf(out, "put %d: full\n", v)
				}
			}
			fmt.Fprintf(out, "ring: %v size=%d\n", r, r.Size())
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 5, "slots to allocate; the ring holds one less")
	cmd.Flags().IntSliceVar(&puts, "put", []int{1, 2, 3, 4, 5}, "values to put first")
	cmd.Flags().IntVar(&takes, "take", 5, "number of takes after the first puts")
	cmd.Flags().IntSliceVar(&putsAfter, "put-after", []int{5}, "values to put after taking")
	return cmd
}
