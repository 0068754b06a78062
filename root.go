package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"postsearch/internal/api"
	"postsearch/internal/config"
	"postsearch/internal/ui"
)

// options holds the command line flags
type options struct {
	baseURL     string
	configPath  string
	debounce    time.Duration
	pageSize    int
	timeout     time.Duration
	logFile     string
	noAltScreen bool
	debug       bool
	writeConfig bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "postsearch",
		Short:        "Search and page through a REST resource from the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.baseURL, "url", "", "resource to search (default "+api.DefaultBaseURL+")")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/postsearch/config.toml)")
	flags.DurationVar(&opts.debounce, "debounce", config.DefaultDebounce, "quiet period before a typed query is fetched")
	flags.IntVar(&opts.pageSize, "page-size", config.DefaultPageSize, "results per page")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout, 0 for none")
	flags.StringVar(&opts.logFile, "log-file", "postsearch.log", "log file")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "draw inline instead of on the alternate screen")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.writeConfig, "write-config", false, "save the effective configuration to the config file and exit")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {
	closeLog := setupLogging(opts.logFile, opts.debug)
	defer closeLog()

	configSvc := config.NewConfigService()
	if opts.configPath != "" {
		configSvc = config.NewConfigServiceAt(opts.configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		slog.Error("config load failed", "path", configSvc.Path(), "err", err)
		return err
	}

	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if opts.writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configSvc.Path())
		return nil
	}

	client, err := api.NewClient(cfg.BaseURL,
		api.WithTimeout(cfg.RequestTimeout.Std()),
		api.WithUserAgent(cfg.UserAgent),
	)
	if err != nil {
		return err
	}

	// SIGTERM ends the program; SIGINT arrives as ctrl+c in raw mode
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	uiModel := ui.NewModel(cfg, client, client.BaseURL())

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	slog.Info("starting", "url", client.BaseURL(), "page_size", cfg.PageSize, "debounce", cfg.Debounce.Std())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		slog.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	slog.Info("exited normally")
	return nil
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("debounce") {
		cfg.Debounce = config.Duration(opts.debounce)
	}
	if flags.Changed("page-size") {
		cfg.PageSize = opts.pageSize
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = config.Duration(opts.timeout)
	}
	if opts.noAltScreen {
		cfg.UISettings.AltScreen = false
	}
}

// setupLogging sends slog output to path so the terminal UI stays clean
func setupLogging(path string, debug bool) func() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}

	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	})))
	return closeFn
}
