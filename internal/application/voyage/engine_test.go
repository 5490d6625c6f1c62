package voyage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/encounter"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
	"github.com/brinevale/voyager-go/internal/domain/weather"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// fakeWorld is a three-port world with one route for engine tests.
type fakeWorld struct {
	ports      map[string]*world.Port
	routes     map[string]*world.Route
	templates  map[string]*ship.Template
	categories []world.CargoCategory
	table      encounter.Table
}

func (w *fakeWorld) Port(id string) (*world.Port, bool) {
	p, ok := w.ports[id]
	return p, ok
}

func (w *fakeWorld) Route(id string) (*world.Route, bool) {
	r, ok := w.routes[id]
	return r, ok
}

func (w *fakeWorld) ShipTemplate(id string) (*ship.Template, bool) {
	t, ok := w.templates[id]
	return t, ok
}

func (w *fakeWorld) CargoCategories() []world.CargoCategory { return w.categories }

func (w *fakeWorld) EncounterTable() encounter.Table { return w.table }

func testWorld() *fakeWorld {
	return &fakeWorld{
		ports: map[string]*world.Port{
			"saltmere": {
				ID: "saltmere", Name: "Saltmere", Size: world.PortSizePort,
				Water: world.WaterCoastal, Connections: map[string]int{"gullpoint": 180},
			},
			"gullpoint": {
				ID: "gullpoint", Name: "Gullpoint", Size: world.PortSizePort,
				Water: world.WaterShallow,
				Connections: map[string]int{"saltmere": 180, "farshore": 340},
			},
			"farshore": {
				ID: "farshore", Name: "Farshore", Size: world.PortSizeMajor,
				Water: world.WaterShallow, Connections: map[string]int{"gullpoint": 340},
			},
		},
		routes: map[string]*world.Route{
			"coastal-run": {ID: "coastal-run", Name: "Coastal Run",
				Ports: []string{"saltmere", "gullpoint", "farshore"}},
		},
		templates: map[string]*ship.Template{
			"coaster": {
				ID: "coaster", Name: "Gull's Wake", ShipType: "Coaster",
				HullMax: 30, CargoCapacity: 20, Movement: 15,
				Crew: ship.Complement{
					{Role: ship.RoleSailor, Count: 10},
					{Role: ship.RoleMarine, Count: 4},
				},
			},
			"galley": {
				ID: "galley", Name: "Oarwind", ShipType: "Galley",
				HullMax: 30, CargoCapacity: 12, Movement: 15,
				Crew: ship.Complement{
					{Role: ship.RoleSailor, Count: 6},
					{Role: ship.RoleOarsman, Count: 4},
				},
			},
		},
		categories: []world.CargoCategory{
			{Class: world.CargoPrimitive, BaseValue: 40, RollMin: 3, RollMax: 8},
			{Class: world.CargoConsumer, BaseValue: 150, RollMin: 9, RollMax: 13},
			{Class: world.CargoComfort, BaseValue: 400, RollMin: 14, RollMax: 16},
			{Class: world.CargoFine, BaseValue: 1200, RollMin: 17, RollMax: 19},
			{Class: world.CargoPrecious, BaseValue: 4000, RollMin: 20, RollMax: 20},
		},
		table: encounter.Table{
			world.WaterCoastal: {
				encounter.FrequencyCommon: []encounter.Entry{
					{Name: "Shark", Category: "FISH", Size: "L", HitDice: 4, Number: "1d3"},
				},
			},
			world.WaterShallow: {
				encounter.FrequencyCommon: []encounter.Entry{
					{Name: "Porpoise", Category: "FISH", Size: "M", HitDice: 2, Number: "2d4"},
				},
			},
		},
	}
}

// calmWeather returns good sailing winds forever.
type calmWeather struct{}

func (calmWeather) GenerateDayWeather(context.Context) (weather.Record, error) {
	return weather.Record{Wind: weather.Wind{SpeedMPH: 25, Direction: "W"}, Sky: "clear"}, nil
}

// scriptedWeather plays a fixed forecast, then stays calm.
type scriptedWeather struct {
	records []weather.Record
}

func (s *scriptedWeather) GenerateDayWeather(context.Context) (weather.Record, error) {
	if len(s.records) == 0 {
		return calmWeather{}.GenerateDayWeather(context.Background())
	}
	r := s.records[0]
	s.records = s.records[1:]
	return r, nil
}

// memStore is an in-memory state store.
type memStore struct {
	states map[string]*voyage.State
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]*voyage.State)}
}

func (m *memStore) Save(_ context.Context, state *voyage.State) error {
	m.states[state.ID] = state
	return nil
}

func (m *memStore) Load(_ context.Context, id string) (*voyage.State, error) {
	state, ok := m.states[id]
	if !ok {
		return nil, shared.NewNotFoundError("voyage", id)
	}
	return state, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.states, id)
	return nil
}

func (m *memStore) ListActive(_ context.Context) ([]string, error) {
	var ids []string
	for id, state := range m.states {
		if !state.Finished() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// captureJournal and captureNotifier record what finalize emits.
type captureJournal struct {
	reports []*voyage.Report
}

func (c *captureJournal) Emit(_ context.Context, report *voyage.Report) error {
	c.reports = append(c.reports, report)
	return nil
}

type captureNotifier struct {
	messages []string
}

func (c *captureNotifier) Notify(_ context.Context, _ string, message string) error {
	c.messages = append(c.messages, message)
	return nil
}

type harness struct {
	engine   *Engine
	store    *memStore
	journal  *captureJournal
	notifier *captureNotifier
	weather  *scriptedWeather
}

// newHarness builds an engine whose per-day dice come from the given face
// scripts, consumed one script per simulated day.
func newHarness(t *testing.T, scripts ...[]int) *harness {
	t.Helper()
	h := &harness{
		store:    newMemStore(),
		journal:  &captureJournal{},
		notifier: &captureNotifier{},
		weather:  &scriptedWeather{},
	}
	h.engine = NewEngine(Dependencies{
		World:     testWorld(),
		Weather:   h.weather,
		Store:     h.store,
		Decisions: AutoDecisions{},
		Notifier:  h.notifier,
		Journal:   h.journal,
	})
	queue := scripts
	h.engine.newRoller = func(*voyage.State) *dice.Roller {
		if len(queue) == 0 {
			return dice.NewScriptedRoller()
		}
		faces := queue[0]
		queue = queue[1:]
		return dice.NewScriptedRoller(faces...)
	}
	return h
}

func testCaptain() proficiency.Officer {
	return proficiency.Officer{
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
	}
}

func testConfig(shipID string, tradeMode voyage.TradeMode) voyage.Config {
	cfg := voyage.Config{
		ShipID:       shipID,
		RouteID:      "coastal-run",
		Mode:         voyage.ModeManual,
		TradeMode:    tradeMode,
		Captain:      testCaptain(),
		StartingGold: 5000,
		StartDate:    shared.Date{Year: 1247, Month: 12, Day: 1},
		CrewQuality:  shared.CrewQualityAverage,
		Seed:         7,
	}
	if tradeMode == voyage.TradeConsignment {
		cfg.CommissionRate = 20
	}
	return cfg
}

// sailingState builds a mid-leg state directly, bypassing the origin phase.
func sailingState(t *testing.T, h *harness, shipID string) *voyage.State {
	t.Helper()
	wd := testWorld()
	template := wd.templates[shipID]
	state := &voyage.State{
		ID:     "v-" + shipID,
		Config: testConfig(shipID, voyage.TradeSpeculation),
		Status: voyage.StatusSailing,
		Ship:   template.Instantiate(), Template: *template,
		Legs: []world.Leg{
			{Index: 0, FromID: "saltmere", ToID: "gullpoint", Miles: 180, Water: world.WaterCoastal},
			{Index: 1, FromID: "gullpoint", ToID: "farshore", Miles: 340, Water: world.WaterShallow},
		},
		RemainingMiles:  180,
		CurrentDate:     shared.Date{Year: 1247, Month: 12, Day: 1},
		StartingCapital: 5000,
	}
	state.Config.ShipID = shipID
	state.Ledger.Open(state.CurrentDate, "Voyage capital", 5000)
	state.Treasury = state.Ledger.Balance()
	require.NoError(t, h.store.Save(context.Background(), state))
	return state
}

func TestEngine_Start_ConsignmentOrigin(t *testing.T) {
	// Origin dice: entrance d10, berth availability d100.
	h := newHarness(t, []int{6, 50})

	state, err := h.engine.Start(context.Background(), testConfig("coaster", voyage.TradeConsignment))
	require.NoError(t, err)

	assert.Equal(t, voyage.StatusSailing, state.Status)
	assert.Equal(t, 180, state.RemainingMiles)
	assert.Equal(t, []string{"saltmere"}, state.PortsVisited)

	// Fees: entrance 16, pilot 30, anchorage 5x3. Consignment fee for 520
	// miles on 20 loads is 800; half is advanced at loading.
	assert.Equal(t, 5000-61+400, state.Treasury)
	require.True(t, state.Cargo.Holding())
	assert.True(t, state.Cargo.Consigned)
	assert.Equal(t, 20, state.Cargo.Loads)
	assert.Equal(t, 800, state.Cargo.TransportFee)
	assert.NoError(t, state.Validate())

	// The started voyage is saved.
	saved, err := h.store.Load(context.Background(), state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, saved.ID)
}

func TestEngine_Start_UnknownShip(t *testing.T) {
	h := newHarness(t)
	cfg := testConfig("leviathan", voyage.TradeSpeculation)

	_, err := h.engine.Start(context.Background(), cfg)
	assert.Error(t, err)
}

func TestEngine_Start_RejectsNegativeGold(t *testing.T) {
	h := newHarness(t)
	cfg := testConfig("coaster", voyage.TradeSpeculation)
	cfg.StartingGold = -500

	_, err := h.engine.Start(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "StartingGold")
	assert.Empty(t, h.store.states)
}

func TestEngine_SailDay_GoodWinds(t *testing.T) {
	// Two encounter checks on coastal water, both quiet.
	h := newHarness(t, []int{5, 5})
	state := sailingState(t, h, "coaster")

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, voyage.StatusSailing, after.Status)
	assert.Equal(t, 60, after.RemainingMiles)
	assert.Equal(t, 120, after.TotalDistance)
	assert.Equal(t, shared.Date{Year: 1247, Month: 12, Day: 2}, after.CurrentDate)

	// Wages ceil(32/30) + food ceil(14/5) accrue without touching the ledger.
	assert.Equal(t, 5, after.LegAccumulatedCost)
	assert.Equal(t, 2, after.Breakdown.Wages)
	assert.Equal(t, 3, after.Breakdown.Food)
	assert.Equal(t, 5000, after.Treasury)
}

func TestEngine_SailDay_BecalmedRowing(t *testing.T) {
	h := newHarness(t, []int{5, 5})
	state := sailingState(t, h, "galley")
	state.Config.EnableRowing = true
	h.weather.records = []weather.Record{{Wind: weather.Wind{SpeedMPH: 3}, Sky: "dead calm"}}

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, 180-weather.RowingMilesPerDay, after.RemainingMiles)
	assert.Equal(t, 1, after.ConsecutiveRowingDays)
}

func TestEngine_SailDay_BecalmedWithoutOars(t *testing.T) {
	h := newHarness(t, []int{5, 5})
	state := sailingState(t, h, "coaster")
	state.Config.EnableRowing = true
	h.weather.records = []weather.Record{{Wind: weather.Wind{SpeedMPH: 3}, Sky: "dead calm"}}

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	// No oarsmen aboard: the day passes with no way made.
	assert.Equal(t, 180, after.RemainingMiles)
	assert.Equal(t, shared.Date{Year: 1247, Month: 12, Day: 2}, after.CurrentDate)
}

func TestEngine_SailDay_GaleDamage(t *testing.T) {
	// Dice: piloting d20 (20, miss by 7), major damage 1d5+3 (2 -> 5),
	// then two quiet encounter checks.
	h := newHarness(t, []int{20, 2, 5, 5})
	state := sailingState(t, h, "coaster")
	h.weather.records = []weather.Record{{Wind: weather.Wind{SpeedMPH: 55}, Sky: "storm"}}

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, 25, after.Ship.Hull.Value)
	require.Len(t, after.Events, 1)
	assert.Equal(t, voyage.EventDamage, after.Events[0].Type)
	assert.Equal(t, "weather", after.Events[0].Damage.Source)
	assert.Equal(t, "Gale", after.Events[0].Damage.SourceName)

	// Strong following winds give 152, cut 10% by the fresh hull damage.
	assert.Equal(t, 136, after.TotalDistance)
	assert.Equal(t, 44, after.RemainingMiles)
}

func TestEngine_SailDay_EncounterSighting(t *testing.T) {
	// First check hits on a natural 1: frequency d100 (40, common), number
	// 1d3 (2), distance 6d4 (18 yards, shark surfaces close), surprise d6
	// (5, no), aggression d100 (90, stays a sighting). Second check quiet.
	h := newHarness(t, []int{1, 40, 2, 3, 3, 3, 3, 3, 3, 5, 90, 5})
	state := sailingState(t, h, "coaster")

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	require.Len(t, after.Events, 1)
	event := after.Events[0]
	assert.Equal(t, voyage.EventEncounter, event.Type)
	assert.Equal(t, "Shark", event.Encounter.Name)
	assert.Equal(t, string(encounter.ClassSighting), event.Encounter.Classification)
	assert.Contains(t, event.Encounter.Description, "Spotted shark")
	assert.Equal(t, 30, after.Ship.Hull.Value)
}

func TestEngine_ResolveThreat_FlamingOilFails(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")

	// Oil misses (80 > 75), thrown food is ignored (60 > 50), then the
	// pack batters the hull for 1d2 (2).
	rc := &run{
		state:  state,
		roller: dice.NewScriptedRoller(80, 60, 2),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
	}
	result := &encounter.Result{
		Creature:        "Shark",
		Classification:  encounter.ClassThreat,
		NumberAppearing: 3,
		CanBeDrivenOff:  true,
		Entry:           encounter.Entry{Name: "Shark", Size: "L", HitDice: 4},
	}

	sunk := h.engine.resolveThreat(rc, result)

	require.False(t, sunk)
	assert.Equal(t, 28, state.Ship.Hull.Value)
	require.Len(t, state.Events, 1)
	assert.Equal(t, "Shark", state.Events[0].Damage.SourceName)
}

func TestEngine_ResolveThreat_FoodDrivesOff(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")

	// Oil misses (80 > 75) but food over the side works (30 <= 50).
	rc := &run{
		state:  state,
		roller: dice.NewScriptedRoller(80, 30),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
	}
	result := &encounter.Result{
		Creature:        "Shark",
		Classification:  encounter.ClassThreat,
		NumberAppearing: 3,
		CanBeDrivenOff:  true,
		Entry:           encounter.Entry{Name: "Shark", Size: "L", HitDice: 4},
	}

	sunk := h.engine.resolveThreat(rc, result)

	require.False(t, sunk)
	assert.Equal(t, 30, state.Ship.Hull.Value)
	assert.Empty(t, state.Events)
}

func TestEngine_ProcessPort_FinalSale(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Ledger = voyage.Ledger{}
	state.Ledger.Open(state.CurrentDate, "Voyage capital", 2000)
	state.Treasury = state.Ledger.Balance()
	state.StartingCapital = 2000
	state.LegIndex = 1
	state.RemainingMiles = 0
	state.LegAccumulatedCost = 100
	state.Cargo = voyage.CargoHold{
		Category:      world.CargoCategory{Class: world.CargoConsumer, BaseValue: 150, RollMin: 9, RollMax: 13},
		Loads:         10,
		PricePerLoad:  100,
		PurchaseTotal: 1000,
		OriginPortID:  "gullpoint",
		MilesCarried:  340,
	}

	// Dice: fees d10+d100, then the sale: demand 3d6 (10), trade d20 (14,
	// even miss), distance d6 (6, long haul), bargain d20 (12, margin 1),
	// appraisal d20 (14, even miss), SA 3d6 (9), then customs appraisal d20
	// and duty 2d10 (7 percent).
	rc := &run{
		state: state,
		roller: dice.NewScriptedRoller(
			4, 50,
			3, 4, 3, 14, 6, 12, 14, 3, 3, 3,
			14, 4, 3,
		),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
		encounters: encounter.NewEngine(testWorld().table),
	}

	require.NoError(t, h.engine.processPort(context.Background(), rc))

	assert.Equal(t, voyage.StatusFinal, state.Status)
	assert.False(t, state.Cargo.Holding())

	// Demand +2 (major port), distance +2, bargain +1: SA 14 gives 140%,
	// bargain margin 1 adds 5%: 220 gp a load on ten loads. The owner takes
	// stake plus half the 1200 gp profit; customs levies 7% of the 1500 gp
	// valuation.
	assert.Equal(t, 2000-100-59-15+1600-105, state.Treasury)
	assert.Equal(t, 600, state.CrewEarningsFromTrade)
	assert.Equal(t, 105, state.Breakdown.Trading)
	assert.NoError(t, state.Validate())

	require.Len(t, state.PortActivities, 1)
	activity := state.PortActivities[0]
	assert.Equal(t, "farshore", activity.PortID)
	assert.Equal(t, 3, activity.Days)
	assert.Equal(t, 59, activity.Fees)
}

func TestEngine_ProcessPort_AgentHandlesSale(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Config.Captain.Skills = map[proficiency.Skill]bool{
		proficiency.SkillPiloting: true,
	}
	state.Ledger = voyage.Ledger{}
	state.Ledger.Open(state.CurrentDate, "Voyage capital", 2000)
	state.Treasury = state.Ledger.Balance()
	state.StartingCapital = 2000
	state.LegIndex = 1
	state.RemainingMiles = 0
	state.LegAccumulatedCost = 100
	state.Cargo = voyage.CargoHold{
		Category:      world.CargoCategory{Class: world.CargoConsumer, BaseValue: 150, RollMin: 9, RollMax: 13},
		Loads:         10,
		PricePerLoad:  100,
		PurchaseTotal: 1000,
		OriginPortID:  "gullpoint",
		MilesCarried:  340,
	}

	// Dice: fees d10+d100; agent hire 1d8 (4) + 1d4 (2) for skill 15 and
	// 2d10 (5,5) for a 15% fee; then the sale through the agent's flat
	// skill: demand 3d6 (10), trade d20 (16, even miss), distance d6 (6,
	// long haul), bargain d20 (12, margin 3), appraisal d20 (16, even
	// miss), SA 3d6 (9); customs appraisal d20 (14, talked down) and duty
	// 2d10 (7 percent).
	rc := &run{
		state: state,
		roller: dice.NewScriptedRoller(
			4, 50,
			4, 2, 5, 5,
			3, 4, 3, 16, 6, 12, 16, 3, 3, 3,
			14, 4, 3,
		),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
		encounters: encounter.NewEngine(testWorld().table),
	}

	require.NoError(t, h.engine.processPort(context.Background(), rc))

	assert.Equal(t, voyage.StatusFinal, state.Status)
	assert.False(t, state.Cargo.Holding())

	// Demand 0 +2 (major port) -1 (agent), distance +2, bargain +1: SA 13
	// gives 130%, bargain margin 3 adds 15%: 224 gp a load on ten loads.
	// The agent takes 336 of the 2240; the owner keeps stake plus half the
	// 904 gp gross; customs levies 7% of the talked-down 1350 valuation.
	assert.Equal(t, 2000-100-59-15+1452-94, state.Treasury)
	assert.Equal(t, 452, state.CrewEarningsFromTrade)
	assert.Equal(t, 94, state.Breakdown.Trading)
	assert.NoError(t, state.Validate())

	require.Len(t, state.PortActivities, 1)
	notes := state.PortActivities[0].Notes
	require.NotEmpty(t, notes)
	assert.Contains(t, notes[0], "Engaged a port agent (skill 15, fee 15%)")
}

func TestEngine_ProcessPort_ConsignmentRidesToFinal(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.LegIndex = 0
	state.RemainingMiles = 0
	state.Cargo = voyage.CargoHold{
		Category:     world.CargoCategory{Class: world.CargoPrimitive, BaseValue: 40, RollMin: 3, RollMax: 8},
		Loads:        20,
		Consigned:    true,
		OriginPortID: "saltmere",
		MilesCarried: 180,
		TransportFee: 1600,
	}

	// Dice: days in port (2..4 -> face 1 gives 2), fees d10+d100, passenger
	// rolls 2d4, 1d4, charter chance d100.
	rc := &run{
		state:  state,
		roller: dice.NewScriptedRoller(1, 4, 50, 1, 1, 3, 80),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
		encounters: encounter.NewEngine(testWorld().table),
	}

	require.NoError(t, h.engine.processPort(context.Background(), rc))

	// The consigned hold is untouched at an intermediate port.
	assert.True(t, state.Cargo.Holding())
	assert.True(t, state.Cargo.Consigned)
	assert.Equal(t, voyage.StatusSailing, state.Status)
	assert.Equal(t, 340, state.RemainingMiles)
}

func TestEngine_TradeBuy_WaitsAWeekForLateMerchants(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.LegIndex = 1
	state.RemainingMiles = 0
	state.Ledger = voyage.Ledger{}
	state.Ledger.Open(state.CurrentDate, "Voyage capital", 400)
	state.Treasury = state.Ledger.Balance()
	state.StartingCapital = 400

	// Three merchants in all; two show the first week. Both offer fine
	// goods (3d6 of 18 shifts to 19) priced past the thin treasury, so the
	// ship waits a week for the third, who brings primitive goods (3d6 of
	// 6 shifts to 7) at base price. Each merchant rolls 3d6, an appraisal
	// d20, 3d8 loads and a bargaining d20.
	rc := &run{
		state: state,
		roller: dice.NewScriptedRoller(
			1,
			6, 6, 6, 16, 8, 8, 8, 14,
			6, 6, 6, 16, 8, 8, 8, 14,
			2, 2, 2, 16, 4, 4, 4, 13,
		),
		checker: proficiency.NewChecker(&state.Config.Captain, nil,
			shared.CrewQualityAverage),
		encounters: encounter.NewEngine(testWorld().table),
	}
	gullpoint, ok := testWorld().Port("gullpoint")
	require.True(t, ok)

	require.NoError(t, h.engine.tradeBuy(context.Background(), rc, gullpoint))

	require.True(t, state.Cargo.Holding())
	assert.Equal(t, world.CargoPrimitive, state.Cargo.Category.Class)
	assert.Equal(t, 6, state.Cargo.Loads)
	assert.Equal(t, 40, state.Cargo.PricePerLoad)
	assert.Equal(t, 240, state.Cargo.PurchaseTotal)
	assert.Equal(t, "gullpoint", state.Cargo.OriginPortID)
	assert.Equal(t, 400-240, state.Treasury)
	assert.Equal(t, 240, state.Breakdown.Trading)

	// The wait cost a week at the moorings.
	assert.Equal(t, shared.Date{Year: 1247, Month: 12, Day: 8}, state.CurrentDate)
	assert.Equal(t, 35, state.LegAccumulatedCost)
}

func TestEngine_SimulateDay_FinalizesAndEmits(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Status = voyage.StatusInPort
	state.LegIndex = 2

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, voyage.StatusFinal, after.Status)
	require.Len(t, h.journal.reports, 1)
	assert.Equal(t, state.ID, h.journal.reports[0].VoyageID)
	assert.False(t, h.journal.reports[0].Failed)
	require.Len(t, h.notifier.messages, 1)
	assert.Contains(t, h.notifier.messages[0], "complete")

	// A finished voyage is idempotent under further steps.
	again, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)
	assert.Equal(t, voyage.StatusFinal, again.Status)
	assert.Len(t, h.journal.reports, 1)
}

func TestEngine_SinkingEmitsFailureOnly(t *testing.T) {
	// Piloting d20 misses by 7 under a hurricane (penalty 10): die 15 gives
	// roll 25, critical band 2 damage 1d5+3 with face 5 -> 8... hull is
	// pre-damaged to 5 so any hit sinks her.
	h := newHarness(t, []int{15, 5})
	state := sailingState(t, h, "coaster")
	state.Ship.Hull.Value = 5
	h.weather.records = []weather.Record{{Wind: weather.Wind{SpeedMPH: 80}, Sky: "hurricane"}}

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, voyage.StatusFailed, after.Status)
	assert.True(t, after.Ship.IsSunk())
	assert.Empty(t, h.journal.reports)
	require.Len(t, h.notifier.messages, 1)
	assert.Contains(t, h.notifier.messages[0], "lost at sea")
}

func TestEngine_SailDay_DeadInWaterIsLost(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Ship.Hull.Value = 7 // 76% damage

	after, err := h.engine.SimulateDay(context.Background(), state.ID)
	require.NoError(t, err)

	assert.Equal(t, voyage.StatusFailed, after.Status)
	assert.Equal(t, 0, after.TotalDistance)
	assert.Equal(t, 180, after.RemainingMiles)
	assert.Empty(t, h.journal.reports)
	require.Len(t, h.notifier.messages, 1)
	assert.Contains(t, h.notifier.messages[0], "dead in the water")
}

func TestRunner_RunsVoyageToCompletion(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Status = voyage.StatusInPort
	state.LegIndex = 2

	runner := NewRunner(h.engine, 0)
	final, err := runner.RunToCompletion(context.Background(), state.ID)
	require.NoError(t, err)
	assert.True(t, final.Finished())
}

func TestRunner_ResumeActiveRunsOnlyAutoVoyages(t *testing.T) {
	h := newHarness(t)
	auto := sailingState(t, h, "coaster")
	auto.Config.Mode = voyage.ModeAuto
	auto.Status = voyage.StatusInPort
	auto.LegIndex = 2
	require.NoError(t, h.store.Save(context.Background(), auto))

	manual := sailingState(t, h, "galley")
	manual.Config.Mode = voyage.ModeManual

	runner := NewRunner(h.engine, 0)
	require.NoError(t, runner.ResumeActive(context.Background(), 4))

	finished, err := h.store.Load(context.Background(), auto.ID)
	require.NoError(t, err)
	assert.True(t, finished.Finished())

	parked, err := h.store.Load(context.Background(), manual.ID)
	require.NoError(t, err)
	assert.False(t, parked.Finished())
}

func TestAutoDecisions_Repair(t *testing.T) {
	h := newHarness(t)
	state := sailingState(t, h, "coaster")
	state.Config.AutoRepair = true
	state.Ship.Hull.Value = 24 // 20% damage

	options := voyage.RepairOptions{}
	options.Professional.Cost = 600

	method, accepted, err := AutoDecisions{}.ChooseRepair(context.Background(), state, options)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, "PROFESSIONAL", string(method))

	// Too poor for the yard and no repair trade aboard: sail on.
	state.Treasury = 100
	_, accepted, err = AutoDecisions{}.ChooseRepair(context.Background(), state, options)
	require.NoError(t, err)
	assert.False(t, accepted)
}
