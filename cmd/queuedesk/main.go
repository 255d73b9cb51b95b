package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/queuedesk/core"
	"github.com/jask/queuedesk/internal/config"
	"github.com/jask/queuedesk/internal/database"
	"github.com/jask/queuedesk/internal/database/repository"
	"github.com/jask/queuedesk/internal/prefs"
	"github.com/jask/queuedesk/internal/service"
	"github.com/jask/queuedesk/screens"
	"github.com/jask/queuedesk/tabs"
)

func main() {
	var (
		configPath = pflag.String("config", "", "config file (TOML); defaults to $QUEUEDESK_CONFIG or ~/.config/queuedesk/config.toml")
		dbPath     = pflag.String("db", "", "sqlite database path, overrides the config")
		importPath = pflag.String("import", "", "import visits from a CSV file (date,location,entry,completion) and exit")
		importAs   = pflag.String("as", "", "email of the account imported visits belong to")
		seed       = pflag.Bool("seed", false, "add demo accounts and a week of visits to an empty database")
		logPath    = pflag.String("log", "", "write logs to this file while the TUI runs")
		saveConfig = pflag.Bool("save-config", false, "write the effective settings to the config file and exit")
		help       = pflag.BoolP("help", "h", false, "show usage")
	)
	pflag.Parse()
	if *help {
		fmt.Fprintf(os.Stderr, "Usage: queuedesk [flags]\n\n")
		pflag.PrintDefaults()
		return
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if *saveConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		return
	}
	loc := cfg.Location()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(cfg.Options.Path); errors.Is(err, os.ErrNotExist) {
		if err := prefs.WriteDefault(cfg.Options.Path); err != nil {
			log.Printf("warn: could not write default options: %v", err)
		}
	}
	opts, err := prefs.Load(cfg.Options.Path)
	if err != nil {
		log.Fatalf("options: %v", err)
	}

	if *seed {
		res, err := database.SeedDemo(ctx, db, time.Now().In(loc))
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Printf("seeded %d accounts and %d visits", res.Users, res.Entries)
	}

	// repositories
	users := repository.NewUserRepo(db)
	entries := repository.NewQueueEntryRepo(db)

	// services
	accounts := &service.AccountService{Users: users, Options: opts}
	queue := &service.QueueService{Entries: entries, Options: opts}
	analytics := &service.AnalyticsService{Entries: entries}
	importer := &service.ImportService{Queue: queue}
	maintenance := &service.MaintenanceService{DB: db}

	if *importPath != "" {
		if err := runImport(ctx, importer, users, *importPath, *importAs); err != nil {
			log.Fatalf("import: %v", err)
		}
		return
	}

	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "queuedesk")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	}

	now := func() time.Time { return time.Now().In(loc) }
	accountTab := tabs.NewAccountTab(accounts, opts.RoleNodes())
	queueTab := tabs.NewQueueTab(queue, opts.LocationNodes(), now)
	analyticsTab := tabs.NewAnalyticsTab(analytics)

	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), opts.Keybindings)
	commands := core.NewCommandRegistry(appCommands(queueTab, analyticsTab, maintenance))
	model := core.NewModel([]core.Tab{accountTab, queueTab, analyticsTab}, core.NewKeyRegistry(bindings), commands)
	model.OpenCommandModal = screens.OpenCommandPalette

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func appCommands(queueTab *tabs.QueueTab, analyticsTab *tabs.AnalyticsTab, maintenance *service.MaintenanceService) []core.Command {
	return []core.Command{
		{
			ID:          "sign-out",
			Name:        "Sign out",
			Description: "end the current session",
			Scopes:      []string{"*"},
			Access:      core.AccessSignedIn,
			Execute: func(m *core.Model) tea.Cmd {
				return core.SessionCmd(core.Session{})
			},
		},
		{
			ID:          "refresh",
			Name:        "Refresh",
			Description: "reload visits and analytics",
			Scopes:      []string{"*"},
			Access:      core.AccessSignedIn,
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Batch(queueTab.Reload(m), analyticsTab.Reload(m))
			},
		},
		{
			ID:          "clear-history",
			Name:        "Clear history",
			Description: "delete every recorded visit",
			Scopes:      []string{"*"},
			Access:      core.AccessAdmin,
			Execute: func(m *core.Model) tea.Cmd {
				actor := service.Actor{UserID: m.Session().UserID, Role: m.Session().Role}
				wipe := func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
					defer cancel()
					n, err := maintenance.ClearHistory(ctx, actor)
					if err != nil {
						return core.StatusMsg{Text: err.Error(), IsErr: true}
					}
					return core.StatusMsg{Text: fmt.Sprintf("Deleted %d visits", n)}
				}
				return tea.Sequence(wipe, queueTab.Reload(m))
			},
		},
		{
			ID:          "go-account",
			Name:        "Go to Account",
			Description: "sign in or register",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 0} }
			},
		},
		{
			ID:          "go-queue",
			Name:        "Go to Queue",
			Description: "log a visit",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 1} }
			},
		},
		{
			ID:          "go-analytics",
			Name:        "Go to Analytics",
			Description: "waiting times by location and hour",
			Scopes:      []string{"*"},
			Access:      core.AccessAdmin,
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.TabSwitchMsg{Index: 2} }
			},
		},
	}
}

func runImport(ctx context.Context, importer *service.ImportService, users *repository.UserRepo, path, email string) error {
	if email == "" {
		return errors.New("--as is required with --import")
	}
	u, err := users.ByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("account %s: %w", email, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	res, err := importer.ImportCSV(ctx, f, service.Actor{UserID: u.ID, Role: u.Role})
	if err != nil {
		return err
	}
	for _, rowErr := range res.Errors {
		log.Printf("warn: %v", rowErr)
	}
	log.Printf("imported %d visits, skipped %d", res.Imported, res.Skipped)
	return nil
}
