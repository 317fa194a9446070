package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renato0307/quill/internal/app"
	"github.com/renato0307/quill/internal/commands"
	"github.com/renato0307/quill/internal/config"
	"github.com/renato0307/quill/internal/logging"
	"github.com/renato0307/quill/internal/ui"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call gets its own viper instance.
func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "quill - a terminal chat composer",
		Long: `quill is a terminal message composer with a slash-command palette,
attachments and a local transcript of what you sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, v)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Config file (default: $XDG_CONFIG_HOME/quill/config.yaml)")
	flags.StringP("theme", "t", config.DefaultTheme, fmt.Sprintf("Theme to use (%v)", ui.AvailableThemes()))
	flags.String("placeholder", config.DefaultPlaceholder, "Hint shown while the input is empty")
	flags.String("catalog", "", "YAML file with the command catalog (default: built-in)")
	flags.String("log-file", "", "Log file path (empty disables logging)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")

	// Flag names differ from config keys
	bindings := map[string]string{
		"theme":        "theme",
		"placeholder":  "placeholder",
		"catalog_file": "catalog",
		"log.file":     "log-file",
		"log.level":    "log-level",
		"log.format":   "log-format",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(
		commandsCmd(v),
		themesCmd(),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(v, path)
}

// loadCatalog reads the command catalog, falling back to the built-in one.
func loadCatalog(cfg *config.Config) (*commands.Catalog, error) {
	catalog, err := logging.TimeWithResult("load catalog", func() (*commands.Catalog, error) {
		return commands.LoadFile(cfg.CatalogFile)
	})
	if err != nil {
		return nil, err
	}
	logging.Debug("Catalog ready", "file", cfg.CatalogFile, "count", catalog.Len())
	return catalog, nil
}

// runTUI is the default command - starts the TUI
func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Shutdown() }()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		logging.Error("Startup failed", "error", err)
		return err
	}

	logging.Info("Starting quill",
		"version", version,
		"theme", cfg.Theme,
		"commands", catalog.Len())

	model := app.NewModel(app.Options{
		Theme:       ui.GetTheme(cfg.Theme),
		Catalog:     catalog,
		Placeholder: cfg.Placeholder,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logging.Error("Program exited with error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
