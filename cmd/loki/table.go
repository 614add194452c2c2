package main

import (
	"fmt"

	"github.com/loki-project/loki-go"
	"github.com/muyo/rush/chars"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table [index]",
		Short: "Displays the 2^(m/256) table exp2 is built on, or a single entry of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				w     = cmd.OutOrStdout()
				table = loki.ExpTable()
				from  = 0
				to    = len(table) - 1
			)

			if len(args) == 1 {
				i, ok := chars.ParseUint16(args[0])
				if !ok || int(i) >= len(table) {
					return errors.Errorf("index must be a decimal number from 0 to %d, got %q", len(table)-1, args[0])
				}

				from, to = int(i), int(i)
			}

			for i := from; i <= to; i++ {
				// Index, the m it stands for and the factor.
				if _, err := fmt.Fprintf(w, "%3d %+4d %s\n", i, i-len(table)/2, formatFloat(table[i])); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
