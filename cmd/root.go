// Package cmd provides the root command and CLI setup for jstruct.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/adapter"
	"github.com/mouse-blink/jstruct/internal/config"
	"github.com/mouse-blink/jstruct/internal/controller"
	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
	"github.com/mouse-blink/jstruct/internal/observability"
)

var fsAdapter adapter.SourceFSAdapter
var javaParser adapter.JavaParser
var workflow domain.Workflow
var ui controller.UI
var settings domain.Settings
var metricsServer *observability.Server

// newWorkflow builds the workflow once the configuration is known.
var newWorkflow = func(s domain.Settings, log *slog.Logger) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, javaParser, s, log)
}

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	javaParser = adapter.NewTreeSitterJavaParser()
	settings = domain.DefaultSettings()
	workflow = newWorkflow(settings, slog.Default())
}

var configFlag string
var verboseFlag bool
var dryRunFlag bool
var metricsAddrFlag string

// interactiveAnnotation marks commands that take over the terminal.
const interactiveAnnotation = "interactive"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jstruct [file.java]",
		Short: "Structured editor for the members of a Java class",
		Long: `jstruct edits the fields, methods, enums and inner classes of a Java class
as an outline instead of as text. Every change is written back to the
source file as a minimal edit, and renames update every reference.

Run it with a file to open the interactive outline, or use the
subcommands to script single edits:
  jstruct list Counter.java
  jstruct add variable Counter.java --type int --name total --init 0
  jstruct rename Counter.java method inc increment`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{interactiveAnnotation: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runOutline(cmd, m.Path(args[0]))
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to the TOML configuration file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "print a unified diff instead of saving the file")
	cmd.PersistentFlags().StringVar(&metricsAddrFlag, "metrics-addr", "", "serve prometheus metrics on this address")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, installs the logger and builds the workflow.
func setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	interactive := cmd.Annotations[interactiveAnnotation] == "true" && controller.IsTTY(cmd.OutOrStdout())

	logger := newLogger(cfg, logOutput(cmd, cfg, interactive))
	slog.SetDefault(logger)

	settings, err = settingsFrom(cfg)
	if err != nil {
		return err
	}

	settings.DryRun = dryRunFlag
	workflow = newWorkflow(settings, logger)

	addr := cfg.Metrics.Address
	if metricsAddrFlag != "" {
		addr = metricsAddrFlag
	}

	if addr != "" {
		metricsServer = observability.NewServer(addr)
		metricsServer.Start()
	}

	logger.Debug("configuration loaded", "config", configFlag, "dry_run", dryRunFlag, "interactive", interactive)

	return nil
}

func teardown() error {
	if metricsServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := metricsServer.Stop(ctx)
	metricsServer = nil

	return err
}

// loadConfig reads --config. The default file may be missing; an explicit one may not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configFlag, err)
		}

		return cfg, nil
	}

	cfg, err := config.LoadOptional(configFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configFlag, err)
	}

	return cfg, nil
}

func settingsFrom(cfg *config.Config) (domain.Settings, error) {
	pinned, err := cfg.PinnedKinds()
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		Indent:        cfg.IndentWidth(),
		PinnedAreas:   pinned,
		PollInterval:  cfg.Sync.PollInterval,
		Timeout:       cfg.Sync.Timeout,
		ReparseDelay:  cfg.Sync.ReparseDelay,
		Autosave:      cfg.AutosaveEnabled(),
		Watch:         cfg.WatchEnabled(),
		WatchDebounce: cfg.Watch.Debounce,
	}, nil
}

func newLogger(cfg *config.Config, output io.Writer) *slog.Logger {
	level := slog.LevelInfo

	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if verboseFlag {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
	}))
}

// logOutput keeps logs off the terminal while the interactive editor owns it.
func logOutput(cmd *cobra.Command, cfg *config.Config, interactive bool) io.Writer {
	output := cmd.ErrOrStderr()
	if !interactive {
		return output
	}

	logPath := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		fmt.Fprintf(output, "warning: failed to create log dir for %s: %v\n", logPath, err)
		return io.Discard
	}

	if fi, err := os.Lstat(logPath); err == nil && (fi.Mode()&os.ModeSymlink) != 0 {
		fmt.Fprintf(output, "warning: refusing to write logs to symlink path %s\n", logPath)
		return io.Discard
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(output, "warning: failed to open log file %s: %v\n", logPath, err)
		return io.Discard
	}

	return f
}
