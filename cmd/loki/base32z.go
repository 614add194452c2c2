package main

import (
	"fmt"

	"github.com/loki-project/loki-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) base32zCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base32z <hex>...",
		Short: "Renders hex strings of up to 40 characters in base32z",
		Long: `Renders hex strings in base32z, one per line.

Each hex digit is encoded as a byte of its own. Encodings may not exceed 64 characters,
which limits input to 40 hex digits. Unless --strict is given, characters which are not
hex digits are read as '0'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.base32z,
	}

	cmd.Flags().Bool(flagStrict, false, "Reject characters which are not hex digits, also LOKI_STRICT")

	return cmd
}

func (a *app) base32z(cmd *cobra.Command, args []string) error {
	strict := a.config.GetBool(flagStrict)

	for _, arg := range args {
		// Longer inputs are a programming error in the library. Stop them here.
		if len(arg) > loki.MaxHexLen {
			return errors.Errorf("%q is %d characters long, at most %d are supported", arg, len(arg), loki.MaxHexLen)
		}

		enc, err := loki.HexToBase32zStrict(arg)
		if herr, ok := err.(*loki.InvalidHexError); ok && !strict {
			a.logger.Warn("non-hex character read as '0'",
				zap.String("input", arg),
				zap.Int("pos", herr.Pos),
				zap.String("char", string(herr.Char)),
			)

			enc, err = loki.HexToBase32z(arg)
		}

		if err != nil {
			return errors.Wrapf(err, "encoding %q", arg)
		}

		a.logger.Debug("encoded", zap.Int("in", len(arg)), zap.Int("out", len(enc)))

		if _, err = fmt.Fprintln(cmd.OutOrStdout(), enc); err != nil {
			return err
		}
	}

	return nil
}
