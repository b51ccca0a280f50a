package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blendle/zapdriver"
	"github.com/gochain-io/converge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	config := converge.DefaultConfig()
	var (
		configPath string
		humanLogs  bool
		verbose    bool
		dumpStats  bool
	)

	rootCmd := &cobra.Command{
		Use:   "converge",
		Short: "Search for ball distributions which converge to a uniform value",
		Long: `converge enumerates every tuple in [min,max)^arity whose mean is exactly
the target, simulates the redistribute-and-rotate process on each, and
prints the tuples which become uniform within the attempt limit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			lgr, err := newLogger(humanLogs, verbose)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
				return err
			}
			defer lgr.Sync()

			if configPath != "" {
				loaded, err := converge.LoadConfig(configPath)
				if err != nil {
					lgr.Error("Failed to load config", zap.String("path", configPath), zap.Error(err))
					return err
				}
				overrideFlags(cmd, &loaded)
				config = loaded
			}

			cv, err := config.NewConverge(lgr)
			if err != nil {
				lgr.Error("Failed to create search", zap.Error(err))
				return err
			}

			lgr.Info("Starting converge", zap.String("version", version))
			err = cv.Run(context.Background(), cmd.OutOrStdout())
			if dumpStats {
				cv.Stats().WriteTo(cmd.ErrOrStderr())
			}
			if err != nil {
				lgr.Error("Fatal error", zap.Error(err), zap.Duration("runtime", time.Since(start)))
				return err
			}
			lgr.Info("Shutting down", zap.Duration("runtime", time.Since(start)))
			return nil
		},
	}

	f := rootCmd.Flags()
	f.IntVar(&config.Target, "target", config.Target, "value every position must reach")
	f.IntVar(&config.Arity, "arity", config.Arity, "tuple length")
	f.IntVar(&config.Min, "min", config.Min, "smallest value enumerated")
	f.IntVar(&config.Max, "max", config.Max, "exclusive upper bound of values enumerated")
	f.IntVar(&config.MaxAttempts, "attempts", config.MaxAttempts, "steps simulated per check")
	f.StringVar(&configPath, "config", "", "YAML config file - flags given explicitly take precedence")
	f.BoolVar(&humanLogs, "human", true, "Human readable logs")
	f.BoolVarP(&verbose, "verbose", "v", false, "log every checked candidate")
	f.BoolVar(&dumpStats, "stats", false, "dump metrics to stderr after the search")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// overrideFlags copies flag values given on the command line into loaded.
func overrideFlags(cmd *cobra.Command, loaded *converge.Config) {
	for name, dst := range map[string]*int{
		"target":   &loaded.Target,
		"arity":    &loaded.Arity,
		"min":      &loaded.Min,
		"max":      &loaded.Max,
		"attempts": &loaded.MaxAttempts,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetInt(name)
		*dst = v
	}
}

func newLogger(human, verbose bool) (*zap.Logger, error) {
	var logCfg zap.Config
	if human {
		logCfg = zap.NewDevelopmentConfig()
	} else {
		logCfg = zapdriver.NewProductionConfig()
	}
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return logCfg.Build()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "converge version:", version)
		},
	}
}
