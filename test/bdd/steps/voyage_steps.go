package steps

import (
	"context"
	"fmt"
	"sync"

	"github.com/cucumber/godog"

	"github.com/brinevale/voyager-go/internal/adapters/persistence"
	appvoyage "github.com/brinevale/voyager-go/internal/application/voyage"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
	"github.com/brinevale/voyager-go/internal/domain/weather"
	"github.com/brinevale/voyager-go/internal/infrastructure/database"
	"github.com/brinevale/voyager-go/internal/infrastructure/registry"
)

// calmWeather returns steady sailing weather so scenarios never sink to a
// scripted hurricane.
type calmWeather struct{}

func (calmWeather) GenerateDayWeather(ctx context.Context) (weather.Record, error) {
	return weather.Record{
		Temperature: weather.Temperature{High: 68, Low: 54},
		Wind:        weather.Wind{SpeedMPH: 25, Direction: "SW"},
		Sky:         "partly cloudy",
	}, nil
}

// captureJournal records emitted reports.
type captureJournal struct {
	mu      sync.Mutex
	reports []*voyage.Report
}

func (j *captureJournal) Emit(ctx context.Context, report *voyage.Report) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.reports = append(j.reports, report)
	return nil
}

// captureNotifier records notifications.
type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *captureNotifier) Notify(ctx context.Context, voyageID, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

type voyageContext struct {
	store    voyage.StateStore
	engine   *appvoyage.Engine
	runner   *appvoyage.Runner
	journal  *captureJournal
	notifier *captureNotifier

	state *voyage.State
	err   error
}

func (vc *voyageContext) reset() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to create test database: %w", err)
	}

	reg, err := registry.Load("")
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	vc.journal = &captureJournal{}
	vc.notifier = &captureNotifier{}
	vc.store = persistence.NewGormVoyageRepository(db)
	vc.engine = appvoyage.NewEngine(appvoyage.Dependencies{
		World:     reg,
		Weather:   calmWeather{},
		Store:     vc.store,
		Decisions: appvoyage.AutoDecisions{},
		Notifier:  vc.notifier,
		Journal:   vc.journal,
	})
	vc.runner = appvoyage.NewRunner(vc.engine, 0)
	vc.state = nil
	vc.err = nil
	return nil
}

func (vc *voyageContext) aVoyageSimulator() error {
	return vc.reset()
}

func (vc *voyageContext) iStartAVoyage(shipID, routeID, tradeMode string, seed int) error {
	cfg := voyage.Config{
		ShipID:         shipID,
		RouteID:        routeID,
		Mode:           voyage.ModeAuto,
		TradeMode:      voyage.TradeMode(tradeMode),
		CommissionRate: 25,
		Captain: proficiency.Officer{
			Name: "Maela Thorn",
			Abilities: proficiency.Abilities{
				Strength: 12, Dexterity: 13, Constitution: 11,
				Intelligence: 14, Wisdom: 17, Charisma: 15,
			},
			Skills: map[proficiency.Skill]bool{
				proficiency.SkillBargaining: true,
				proficiency.SkillAppraisal:  true,
				proficiency.SkillTrade:      true,
				proficiency.SkillPiloting:   true,
			},
			Level: 5,
		},
		StartingGold:    5000,
		AutoRepair:      true,
		AutomateTrading: true,
		StartDate:       shared.Date{Year: 1247, Month: 3, Day: 1},
		CrewQuality:     shared.CrewQualityAverage,
		Seed:            int64(seed),
	}

	vc.state, vc.err = vc.engine.Start(context.Background(), cfg)
	return vc.err
}

func (vc *voyageContext) theVoyageIsSailingToward(portID string) error {
	if vc.state.Status != voyage.StatusSailing {
		return fmt.Errorf("expected status SAILING, got %s", vc.state.Status)
	}
	leg, ok := vc.state.CurrentLeg()
	if !ok {
		return fmt.Errorf("voyage has no current leg")
	}
	if leg.ToID != portID {
		return fmt.Errorf("expected next port %s, got %s", portID, leg.ToID)
	}
	return nil
}

func (vc *voyageContext) theHoldCarriesConsignedFreight() error {
	if !vc.state.Cargo.Holding() {
		return fmt.Errorf("hold is empty")
	}
	if !vc.state.Cargo.Consigned {
		return fmt.Errorf("cargo is not consigned")
	}
	return nil
}

func (vc *voyageContext) theLedgerOpensWithStartingCapital() error {
	entries := vc.state.Ledger.Entries
	if len(entries) == 0 {
		return fmt.Errorf("ledger is empty")
	}
	if !entries[0].Opening {
		return fmt.Errorf("first ledger entry is not the opening entry")
	}
	if entries[0].Balance != vc.state.StartingCapital {
		return fmt.Errorf("opening balance %d does not match starting capital %d",
			entries[0].Balance, vc.state.StartingCapital)
	}
	return nil
}

func (vc *voyageContext) iRunTheVoyageToCompletion() error {
	vc.state, vc.err = vc.runner.RunToCompletion(context.Background(), vc.state.ID)
	return vc.err
}

func (vc *voyageContext) theVoyageIsOver() error {
	if !vc.state.Finished() {
		return fmt.Errorf("voyage is still %s", vc.state.Status)
	}
	return nil
}

func (vc *voyageContext) theLedgerBalanceMatchesTheTreasury() error {
	if balance := vc.state.Ledger.Balance(); balance != vc.state.Treasury {
		return fmt.Errorf("ledger balance %d does not match treasury %d", balance, vc.state.Treasury)
	}
	return nil
}

func (vc *voyageContext) aVoyageSummaryWasDelivered() error {
	if vc.state.Status == voyage.StatusFinal && len(vc.journal.reports) == 0 {
		return fmt.Errorf("no report emitted for a completed voyage")
	}
	if len(vc.notifier.messages) == 0 {
		return fmt.Errorf("no notification delivered")
	}
	return nil
}

func (vc *voyageContext) iAdvanceTheVoyageOneDay() error {
	vc.state, vc.err = vc.engine.SimulateDay(context.Background(), vc.state.ID)
	return vc.err
}

func (vc *voyageContext) theVoyageDateHasAdvancedOneDay() error {
	days := vc.state.Config.StartDate.DaysUntil(vc.state.CurrentDate)
	if days != 1 {
		return fmt.Errorf("expected 1 elapsed day, got %d", days)
	}
	return nil
}

func (vc *voyageContext) theSavedStateCanBeReloaded() error {
	loaded, err := vc.store.Load(context.Background(), vc.state.ID)
	if err != nil {
		return err
	}
	if loaded.Treasury != vc.state.Treasury {
		return fmt.Errorf("reloaded treasury %d does not match %d", loaded.Treasury, vc.state.Treasury)
	}
	if loaded.RemainingMiles != vc.state.RemainingMiles {
		return fmt.Errorf("reloaded remaining miles %d does not match %d",
			loaded.RemainingMiles, vc.state.RemainingMiles)
	}
	return nil
}

func (vc *voyageContext) iAbandonTheVoyage() error {
	return vc.engine.Abandon(context.Background(), vc.state.ID)
}

func (vc *voyageContext) theVoyageIsNoLongerStored() error {
	if _, err := vc.store.Load(context.Background(), vc.state.ID); err == nil {
		return fmt.Errorf("voyage %s is still stored", vc.state.ID)
	}
	return nil
}

// InitializeVoyageScenario registers the voyage simulation steps.
func InitializeVoyageScenario(sc *godog.ScenarioContext) {
	vc := &voyageContext{}

	sc.Step(`^a voyage simulator backed by the bundled registry$`, vc.aVoyageSimulator)
	sc.Step(`^I start a voyage with ship "([^"]*)" on route "([^"]*)" in "([^"]*)" mode with seed (\d+)$`, vc.iStartAVoyage)
	sc.Step(`^the voyage is sailing toward "([^"]*)"$`, vc.theVoyageIsSailingToward)
	sc.Step(`^the hold carries consigned freight$`, vc.theHoldCarriesConsignedFreight)
	sc.Step(`^the ledger opens with the starting capital$`, vc.theLedgerOpensWithStartingCapital)
	sc.Step(`^I run the voyage to completion$`, vc.iRunTheVoyageToCompletion)
	sc.Step(`^the voyage is over$`, vc.theVoyageIsOver)
	sc.Step(`^the ledger balance matches the treasury$`, vc.theLedgerBalanceMatchesTheTreasury)
	sc.Step(`^a voyage summary was delivered$`, vc.aVoyageSummaryWasDelivered)
	sc.Step(`^I advance the voyage one day$`, vc.iAdvanceTheVoyageOneDay)
	sc.Step(`^the voyage date has advanced one day$`, vc.theVoyageDateHasAdvancedOneDay)
	sc.Step(`^the saved state can be reloaded$`, vc.theSavedStateCanBeReloaded)
	sc.Step(`^I abandon the voyage$`, vc.iAbandonTheVoyage)
	sc.Step(`^the voyage is no longer stored$`, vc.theVoyageIsNoLongerStored)
}
