package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"userdeck/cmd/userdeck/tui"
	"userdeck/cmd/userdeck/ui"
	"userdeck/internal/api"
	"userdeck/internal/config"
	"userdeck/internal/logging"
	"userdeck/internal/view"
)

var version = "0.3.0"

var (
	// Global flags
	verbose    bool
	configPath string
	baseURL    string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive table when run without a subcommand.
// Assigned in init because its PersistentPreRunE references rootCmd, which
// would otherwise be an initialization cycle.
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "userdeck",
		Short: "userdeck - terminal user management",
		Long: `userdeck is a terminal front end for a remote user directory.

It loads the user list from a REST endpoint and lets you browse, search,
add, edit, and delete records. Every change is sent to the server first
and reflected locally only after the server confirms it.

Run without arguments to start the interactive interface.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The interactive interface owns the terminal, so it logs to a
			// file instead of stderr.
			if cmd == rootCmd {
				return nil
			}
			var err error
			logger, err = logging.NewCLI(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
}

// listCmd prints one page of the table and exits. Useful for scripts and for
// a quick look without entering the interface.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch users and print one page of the table",
	RunE:  runList,
}

var (
	listSearch string
	listPage   int
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the userdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("userdeck %s\n", version)
	},
}

func init() {
	rootCmd = newRootCmd()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.userdeck/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Remote user resource URL (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides config)")

	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by name, username, or email")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page to print")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges file config with the command-line overrides.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout.String()
	}
	return cfg, nil
}

func newAccessor(cfg *config.Config, log *zap.Logger) *api.Client {
	return api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.Timeout(),
		Logger:  log,
	})
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log, err := logging.NewFile(cfg.Logging.File, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	return tui.Run(tui.Config{
		Accessor: newAccessor(cfg, log),
		PageSize: cfg.UI.PageSize,
		Timeout:  cfg.Timeout(),
		Styles:   styles,
		Logger:   log,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := newAccessor(cfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	users, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	p := view.Project(users, listSearch, listPage, cfg.UI.PageSize)

	table := ui.NewTable("", []string{"ID", "Name", "Username", "Email", "Phone", "Website"})
	table.EmptyText = "No users"
	for _, u := range p.Visible {
		table.AddRow(strconv.Itoa(u.ID), u.Name, u.Username, u.Email, u.Phone, u.Website)
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	fmt.Println(table.View(styles))
	fmt.Printf("(%d users)  Page %d / %d\n", p.FilteredCount, p.Page, p.TotalPages)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
