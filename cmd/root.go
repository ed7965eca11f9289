package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/planner"
	"github.com/theirongolddev/spendplan/internal/store"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

var (
	flagDB       string
	flagSession  bool
	flagLogLevel string
	flagCurrency string
)

// appCfg is the configuration loaded before every command runs.
var appCfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "spendplan",
	Short: "Terminal budget planner",
	Long: "Plan what you spend: set an amount available to spend, list spending items,\n" +
		"and see the remaining balance and each item's share of the budget.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite file for the local store (default from config or "+config.EnvDB+")")
	rootCmd.PersistentFlags().BoolVar(&flagSession, "session", false, "Use the session store (nothing is kept after exit)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Display currency: BRL, USD, EUR")
}

// prepare loads .env and the config file, then sets up logging and the
// color profile for the command about to run.
func prepare(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagCurrency != "" {
		if _, ok := money.CurrencyByCode(flagCurrency); !ok {
			return fmt.Errorf("unsupported currency %q", flagCurrency)
		}
		cfg.Display.Currency = flagCurrency
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", config.ConfigPath(), err)
	}
	appCfg = cfg

	level := config.LogLevel(cfg)
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(cmd.ErrOrStderr())

	if !isTerminal(cmd.OutOrStdout()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	theme.SetActive(cfg.Display.Theme)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// storeKind resolves which backing store commands operate on.
func storeKind() store.Kind {
	if flagSession {
		return store.Session
	}
	kind, err := store.ParseKind(appCfg.Storage.DefaultStore)
	if err != nil {
		log.WithError(err).Warn("falling back to the local store")
		return store.Local
	}
	return kind
}

// dbPath returns the SQLite file: --db, then env var or config, then the
// default location.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return config.DBPath(appCfg)
}

// openWorkspace opens the configured store and the workspace on it. The
// returned func releases the database and must always be called.
func openWorkspace() (*planner.Workspace, func(), error) {
	kind := storeKind()
	if kind == store.Session {
		ws, err := planner.Open(store.NewSessionOnly(), store.Session)
		return ws, func() {}, err
	}

	db, err := store.Open(dbPath())
	if err != nil {
		return nil, func() {}, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("closing storage")
		}
	}

	ws, err := planner.Open(store.New(db, nil), store.Local)
	if err != nil {
		closeDB()
		return nil, func() {}, err
	}
	return ws, closeDB, nil
}

func currency() money.Currency {
	return config.Currency(appCfg)
}
