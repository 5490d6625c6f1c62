package cli

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"gorm.io/gorm"

	"github.com/brinevale/voyager-go/internal/adapters/journal"
	"github.com/brinevale/voyager-go/internal/adapters/persistence"
	"github.com/brinevale/voyager-go/internal/adapters/weathergen"
	"github.com/brinevale/voyager-go/internal/application/common"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
	"github.com/brinevale/voyager-go/internal/application/voyage/commands"
	"github.com/brinevale/voyager-go/internal/application/voyage/queries"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
	"github.com/brinevale/voyager-go/internal/infrastructure/config"
	"github.com/brinevale/voyager-go/internal/infrastructure/database"
	"github.com/brinevale/voyager-go/internal/infrastructure/registry"
)

// app bundles the wired services a CLI command needs.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	store    voyage.StateStore
	registry *registry.Registry
	engine   *appvoyage.Engine
	runner   *appvoyage.Runner
	mediator common.Mediator
}

// newApp loads config, opens the database, loads the registry, and wires the
// engine with the automated decision policy and console output.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	dir := registryDir
	if dir == "" {
		dir = cfg.Simulation.RegistryDir
	}
	reg, err := registry.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	var weatherAdapter voyage.WeatherAdapter = weathergen.NewGenerator(time.Now().UnixNano())
	if cfg.Simulation.WeatherCommand != "" {
		weatherAdapter = weathergen.NewCommandAdapter(cfg.Simulation.WeatherCommand,
			weathergen.NewGenerator(time.Now().UnixNano()))
	}

	var reportJournal voyage.Journal = journal.NewTextJournal(os.Stdout)
	if jsonOutput {
		reportJournal = journal.NewJSONJournal(os.Stdout)
	}

	store := persistence.NewGormVoyageRepository(db)
	engine := appvoyage.NewEngine(appvoyage.Dependencies{
		World:     reg,
		Weather:   weatherAdapter,
		Store:     store,
		Decisions: appvoyage.AutoDecisions{},
		Notifier:  journal.NewConsoleNotifier(os.Stdout),
		Journal:   reportJournal,
	})

	a := &app{
		cfg:      cfg,
		db:       db,
		store:    store,
		registry: reg,
		engine:   engine,
		runner:   appvoyage.NewRunner(engine, cfg.Simulation.DaysPerSecond),
		mediator: common.NewMediator(),
	}
	if err := a.registerHandlers(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) registerHandlers() error {
	register := map[common.Request]common.RequestHandler{
		&commands.StartVoyageCommand{}:   commands.NewStartVoyageHandler(a.engine),
		&commands.SimulateDayCommand{}:   commands.NewSimulateDayHandler(a.engine),
		&commands.AbandonVoyageCommand{}: commands.NewAbandonVoyageHandler(a.engine),
		&queries.GetStatusQuery{}:        queries.NewGetStatusHandler(a.store),
		&queries.GetReportQuery{}:        queries.NewGetReportHandler(a.store),
		&queries.GetLedgerQuery{}:        queries.NewGetLedgerHandler(a.store),
	}
	for request, handler := range register {
		if err := a.mediator.Register(reflect.TypeOf(request), handler); err != nil {
			return err
		}
	}
	return nil
}

// close releases the database connection.
func (a *app) close() {
	if a.db != nil {
		database.Close(a.db)
	}
}

// formatGold formats gold with thousands separator
func formatGold(n int) string {
	if n < 0 {
		return "-" + addThousandsSeparator(-n)
	}
	return addThousandsSeparator(n)
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Insert commas from right to left
	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
