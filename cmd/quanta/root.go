package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/quanta"
)

// log is the process-wide logger. It starts as a no-op so helpers are
// safe to call before the root command initializes it.
var log = zap.NewNop().Sugar()

var rootCmd = &cobra.Command{
	Use:     "quanta",
	Short:   "Generate physical quantity types from a unit catalog",
	Version: quanta.Version,
	Long: `Quanta compiles a catalog of physical quantity kinds, units and
dimensional relations into a Go package of generics-based quantity types.

Available commands:
  generate - Compile a catalog and emit the quantity package
  validate - Compile a catalog and report problems without emitting code
  features - List the opt-in codegen features
  bump     - Increment the patch version of a build manifest

Examples:
  quanta generate                          # Built-in SI catalog to ./units
  quanta generate --catalog units.yaml --feature serde,interop
  quanta generate --catalog units.db --watch
  quanta validate --catalog units.yaml
  quanta bump --manifest Cargo.toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		log = logger.Sugar()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default quanta.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newFeaturesCmd())
	rootCmd.AddCommand(newBumpCmd())
}

// initConfig wires the viper fallback chain: explicit --config file,
// then quanta.yaml in the working directory, then QUANTA_* environment
// variables. A missing config file is not an error.
func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quanta")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("QUANTA")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newLogger builds a console logger. Verbose mode lowers the level to
// debug and keeps caller annotations.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.DisableCaller = true
	}
	return cfg.Build()
}

// setting returns the flag value, falling back to the same-named viper
// key when the flag was not set on the command line.
func setting(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

// intSetting is setting for integer flags.
func intSetting(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

// sliceSetting is setting for string-slice flags.
func sliceSetting(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetStringSlice(name)
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}
