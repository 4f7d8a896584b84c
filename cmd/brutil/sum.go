package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bruplint/brutil"
)

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum A B",
		Short: "Print the sum of two non-negative integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid argument A: %w", err)
			}
			b, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid argument B: %w", err)
			}

			sum, err := brutil.SumAsString(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
