package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "LOKI"

	flagLogLevel = "log-level"
	flagBits     = "bits"
	flagLegacy   = "legacy"
	flagStrict   = "strict"
)

// Version gets set at build time through -ldflags "-X main.Version=...".
var Version = "dev"

type app struct {
	config *viper.Viper
	logger *zap.Logger
}

func newApp() *app {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	return &app{
		config: config,
		logger: zap.NewNop(),
	}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "loki",
		Short: "Reproducible exp2 and base32z encoding of hex keys",
		Long: `loki evaluates 2^x bit for bit the same on every platform, and renders hex encoded
keys in base32z.

Negative numbers need to follow a "--" so they do not get taken for flags:

    loki exp2 -- -0.5`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().String(flagLogLevel, "warn", "Log level (debug, info, warn, error), also LOKI_LOG_LEVEL")

	root.AddCommand(
		a.exp2Command(),
		a.roundCommand(),
		a.inspectCommand(),
		a.base32zCommand(),
		a.tableCommand(),
		a.versionCommand(),
	)

	return root
}

// setup binds the flags of the command about to run to the configuration and builds the logger
// from it. Flags given explicitly take precedence over LOKI_* environment variables.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.config.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.config.GetString(flagLogLevel))
	if err != nil {
		return err
	}

	a.logger = logger.Named(cmd.Name())

	return nil
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core), nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the version of this program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "loki "+Version+"\n")
			return err
		},
	}
}
