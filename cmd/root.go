// Package cmd implements the beadmatch command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appbeads "github.com/zjrosen/beadmatch/internal/beads/application"
	domain "github.com/zjrosen/beadmatch/internal/beads/domain"
	infrabeads "github.com/zjrosen/beadmatch/internal/beads/infrastructure"
	"github.com/zjrosen/beadmatch/internal/config"
	"github.com/zjrosen/beadmatch/internal/log"
	"github.com/zjrosen/beadmatch/internal/mode/menu"
	"github.com/zjrosen/beadmatch/internal/paths"
	"github.com/zjrosen/beadmatch/internal/ui/report"
)

var (
	cfgFile     string
	catalogPath string
	debug       bool
	logFile     string

	cfg        config.Config
	configUsed string
	logger     = log.Nop()
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "beadmatch",
	Short: "Find the closest beads to a color",
	Long: `beadmatch approximates colors with fuse beads. It converts a bead
between brands and estimates how many beads of each color a pixel-art
sprite needs. Run without a subcommand for the interactive menu.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.beadmatch.yaml, then the user config dir)")
	flags.StringVar(&catalogPath, "catalog", "", "bead catalog CSV or a directory containing data/beads.csv")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and closes the log file on every path,
// including command errors where cobra skips post-run hooks.
func execute() error {
	err := rootCmd.Execute()
	if closeErr := closeLog(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// setup loads configuration and opens the logger for every command.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{"catalog": "catalog", "debug": "debug", "log_file": "log-file"} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}

	configUsed = paths.FindConfig(cfgFile)
	if configUsed != "" {
		v.SetConfigFile(configUsed)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", configUsed, err)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	return openLogger(cmd.ErrOrStderr())
}

func openLogger(stderr io.Writer) error {
	if err := closeLog(); err != nil {
		return err
	}
	w := stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(paths.ExpandHome(cfg.LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w, logCloser = f, f
	}

	l, err := log.New(w, log.Options{
		Level:     cfg.LogLevel(),
		Format:    cfg.LogFormat,
		Timestamp: cfg.LogFile != "",
	})
	if err != nil {
		return err
	}
	logger = l
	logger.Debug(log.CatConfig, "Configuration loaded", "config", configUsed, "catalog", cfg.Catalog)
	return nil
}

func closeLog() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	logger = log.Nop()
	return err
}

// loadService reads the catalog and wires the application service.
func loadService(cmd *cobra.Command) (*appbeads.Service, error) {
	path := paths.FindCatalog(cfg.Catalog, configUsed)
	policy, err := domain.ParseTieBreak(cfg.Search.TieBreak)
	if err != nil {
		return nil, err
	}

	svc, err := appbeads.LoadService(
		infrabeads.NewCSVCatalogReader(path, logger),
		infrabeads.NewImageHistogramReader(cfg.Sprite.MaxColors, logger),
		uint8(cfg.Sprite.AlphaThreshold),
		logger,
		appbeads.WithTieBreak(policy),
		appbeads.WithTopN(cfg.Search.TopN),
		appbeads.WithMemo(cfg.Search.Cache),
	)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCatalog) || errors.Is(err, os.ErrNotExist) {
			fmt.Fprint(cmd.ErrOrStderr(), report.RenderCatalogError(path, err, terminalWidth()))
		}
		return nil, err
	}
	logger.Info(log.CatCatalog, "Catalog loaded", "path", path, "beads", svc.Catalog().Len())
	return svc, nil
}

func reportOptions() report.Options {
	return report.Options{
		Width:        terminalWidth(),
		Swatches:     cfg.UI.Swatches,
		MaxNameWidth: cfg.UI.MaxNameWidth,
	}
}

// terminalWidth returns the width of stdout, or report.DefaultWidth when
// stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return report.DefaultWidth
	}
	return w
}

func runMenu(cmd *cobra.Command, _ []string) error {
	svc, err := loadService(cmd)
	if err != nil {
		return err
	}

	model := menu.New(menu.Config{
		Service: svc,
		Logger:  logger,
		Report:  reportOptions(),
	})
	p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		logger.ErrorErr(log.CatUI, "Menu exited with error", err)
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
