package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
)

type rootOpts struct {
	configPath    string
	logLevel      string
	cpuProfile    string
	memProfileDir string
}

// app carries what the root command resolves before any sub command runs
type app struct {
	opts       rootOpts
	fileConfig config.FileConfig
	profiler   *profiler
}

func NewRootCommand() *cobra.Command {
	rootCmd, _ := newRootCommand()
	return rootCmd
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "textsteg",
		Short:         "Hide text in images and read it back",
		Long:          "textsteg hides text in the least significant bits of an image's color channels and writes the result as a lossless PNG.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to a YAML config file. Defaults to .textsteg.yaml in the working directory, then $XDG_CONFIG_HOME/textsteg/config.yml")
	rootCmd.PersistentFlags().StringVar(&a.opts.logLevel, "log-level", "info", "Log level, one of debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&a.opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(
		encodeTextCommand(a),
		decodeTextCommand(a),
		capacityCommand(a),
		serveAppCommand(a),
	)
	return rootCmd, a
}

// Execute runs the CLI. It should be called by the main package.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, a := newRootCommand()
	// Profiles are flushed even when the command fails
	err := errors.Join(rootCmd.ExecuteContext(ctx), a.teardown())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	logging.SetOutput(cmd.ErrOrStderr())

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	a.fileConfig, err = config.Load(a.opts.configPath, workDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := a.fileConfig.GetLogLevel()
	if cmd.Flags().Changed("log-level") {
		logLevel = config.ParseLogLevel(a.opts.logLevel)
	}
	logging.SetLevel(logLevel)

	if a.opts.cpuProfile != "" || a.opts.memProfileDir != "" {
		a.profiler, err = startProfiling(a.opts.cpuProfile, a.opts.memProfileDir)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) teardown() error {
	if a.profiler == nil {
		return nil
	}
	return a.profiler.Stop()
}
