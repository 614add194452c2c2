package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/loki-project/loki-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const inspectFmt = `
-- Input

          x: %s

-- Decomposition

          N: %d
          M: %d
          Z: %s
    tanh(Z): %s
    exp(2Z): %s
  2^(M/256): %s

-- Result

       Exp2: %s
     Legacy: %s

`

func (a *app) exp2Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exp2 <x>...",
		Short: "Computes 2^x for each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := loki.Exp2
			if a.config.GetBool(flagLegacy) {
				f = loki.Exp2Legacy
			}

			return a.eval(cmd, args, f)
		},
	}

	cmd.Flags().Bool(flagBits, false, "Also print the IEEE-754 bit pattern of each result, also LOKI_BITS")
	cmd.Flags().Bool(flagLegacy, false, "Drop negative integer parts of x like historic releases did, also LOKI_LEGACY")

	return cmd
}

func (a *app) roundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round <x>...",
		Short: "Rounds each argument to the nearest integer, halves away from zero",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, args, loki.Round)
		},
	}

	cmd.Flags().Bool(flagBits, false, "Also print the IEEE-754 bit pattern of each result, also LOKI_BITS")

	return cmd
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <x>",
		Short: "Displays how exp2 decomposes x",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat(args[0])
			if err != nil {
				return err
			}

			d, ok := loki.Decompose(x)
			if !ok {
				return errors.Errorf("%s is outside of the range exp2 decomposes", args[0])
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), inspectFmt,
				formatFloat(x),
				d.N,
				d.M,
				formatFloat(d.Z),
				formatFloat(d.Tanh),
				formatFloat(d.ExpY),
				formatFloat(d.Factor),
				formatFloat(loki.Exp2(x)),
				formatFloat(loki.Exp2Legacy(x)),
			)

			return err
		},
	}
}

// eval writes f(x) for each argument, one per line.
func (a *app) eval(cmd *cobra.Command, args []string, f func(float64) float64) error {
	var (
		w    = cmd.OutOrStdout()
		bits = a.config.GetBool(flagBits)
	)

	for _, arg := range args {
		x, err := parseFloat(arg)
		if err != nil {
			return err
		}

		y := f(x)
		a.logger.Debug("evaluated", zap.Float64("x", x), zap.Float64("result", y))

		if err = writeFloat(w, y, bits); err != nil {
			return err
		}
	}

	return nil
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}

	return x, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func writeFloat(w io.Writer, x float64, bits bool) (err error) {
	if bits {
		_, err = fmt.Fprintf(w, "%s 0x%016x\n", formatFloat(x), math.Float64bits(x))
	} else {
		_, err = fmt.Fprintln(w, formatFloat(x))
	}

	return err
}
