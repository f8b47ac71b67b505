// Package main provides the CLI entrypoint for hoopmetrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/hoopmetrics/internal/config"
	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/session"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
	"github.com/verte-zerg/hoopmetrics/internal/statsui"
	"github.com/verte-zerg/hoopmetrics/internal/store"
)

const (
	defaultRecent   = 10
	defaultPageSize = 5
	defaultSort     = "percentage"
	defaultOrder    = "desc"
	defaultDelayMs  = 800
	defaultType     = "2pt"
	defaultSeed     = 20
)

var (
	dbPath string

	uiRecent   int
	uiPageSize int
	uiSort     string
	uiOrder    string
	uiDelayMs  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hoopmetrics",
		Short:         "Track basketball shooting and compare it with NBA careers",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default: XDG data dir)")
	rootCmd.Flags().IntVar(&uiRecent, "recent", defaultRecent, "sessions shown in the trend")
	rootCmd.Flags().IntVar(&uiPageSize, "page-size", defaultPageSize, "history rows per page")
	rootCmd.Flags().StringVar(&uiSort, "sort", defaultSort, "comparison sort column")
	rootCmd.Flags().StringVar(&uiOrder, "order", defaultOrder, "comparison sort order (asc|desc)")
	rootCmd.Flags().IntVar(&uiDelayMs, "delay-ms", defaultDelayMs, "comparison loading delay in milliseconds")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "recent", &uiRecent, fileCfg.Dashboard.Recent)
	applyIntConfig(cmd, "page-size", &uiPageSize, fileCfg.History.PageSize)
	applyStringConfig(cmd, "sort", &uiSort, fileCfg.Compare.Sort)
	applyStringConfig(cmd, "order", &uiOrder, fileCfg.Compare.Order)
	applyIntConfig(cmd, "delay-ms", &uiDelayMs, fileCfg.Compare.DelayMs)

	if uiRecent < 0 {
		return fmt.Errorf("--recent must be >= 0")
	}
	if uiPageSize < 0 {
		return fmt.Errorf("--page-size must be >= 0")
	}
	if uiDelayMs < 0 {
		return fmt.Errorf("--delay-ms must be >= 0")
	}
	field, dir, err := validateSort(uiSort, uiOrder)
	if err != nil {
		return err
	}
	shotType, err := defaultShotType(fileCfg)
	if err != nil {
		return err
	}

	db, sessions, err := openSessions(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	cfg := model.DashboardConfig{
		Recent:       uiRecent,
		PageSize:     uiPageSize,
		SortField:    field,
		SortOrder:    dir,
		CompareDelay: uiDelayMs,
		DefaultType:  shotType,
	}
	ui := statsui.NewModel(sessions, cfg)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func loadFileConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

// openSessions opens the database and rehydrates the session list. Unreadable
// data is reported on stderr and the list starts empty.
func openSessions(cmd *cobra.Command, fileCfg config.FileConfig) (*store.Store, *session.Store, error) {
	path := config.DefaultDBPath()
	applyStringConfig(cmd, "db", &path, fileCfg.Storage.DB)
	if cmd.Flags().Changed("db") {
		path = dbPath
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	opts := []session.Option{session.WithWarnings(func(msg string) {
		logErrf("warning: %s\n", msg)
	})}
	if key := fileCfg.Storage.Key; key != nil && strings.TrimSpace(*key) != "" {
		opts = append(opts, session.WithKey(strings.TrimSpace(*key)))
	}
	sessions := session.New(db, opts...)
	// Rehydrate failures are already reported through the warning sink.
	_ = sessions.Rehydrate(context.Background())
	return db, sessions, nil
}

func closeDB(db *store.Store) {
	if cerr := db.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func validateSort(field, order string) (string, model.Direction, error) {
	valid := false
	for _, f := range stats.PlayerFields {
		if f == field {
			valid = true
			break
		}
	}
	if !valid {
		return "", "", fmt.Errorf("unknown sort column %q (available: %s)", field, strings.Join(stats.PlayerFields, ", "))
	}
	dir, err := model.ParseDirection(order)
	if err != nil {
		return "", "", err
	}
	return field, dir, nil
}

func defaultShotType(fileCfg config.FileConfig) (model.ShotType, error) {
	raw := defaultType
	if fileCfg.Session.Type != nil {
		raw = *fileCfg.Session.Type
	}
	st, err := model.ParseShotType(raw)
	if err != nil {
		return "", fmt.Errorf("invalid [session] type: %w", err)
	}
	return st, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hoopmetrics configuration
# Uncomment a value to enable it. CLI flags override config values.

[storage]
# db = "/path/to/hoopmetrics.db"  # SQLite database (default: XDG data dir)
# key = %q      # Key holding the saved session list

[dashboard]
# recent = %d            # Sessions shown in the trend

[history]
# page-size = %d         # History rows per page

[compare]
# sort = %q   # Comparison sort column
# order = %q          # asc or desc
# delay-ms = %d         # Comparison loading delay

[session]
# type = %q             # Default shot type for new sessions (2pt, 3pt, ft)
`,
		session.StorageKey,
		defaultRecent,
		defaultPageSize,
		defaultSort,
		defaultOrder,
		defaultDelayMs,
		defaultType,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
