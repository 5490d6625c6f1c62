// Package voyage contains the voyage engine: the orchestrator that owns the
// state machine (origin, sailing legs, port calls, finalization) and drives
// every subsystem in the fixed daily and port order.
package voyage

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/brinevale/voyager-go/internal/domain/dice"
	"github.com/brinevale/voyager-go/internal/domain/encounter"
	"github.com/brinevale/voyager-go/internal/domain/market"
	"github.com/brinevale/voyager-go/internal/domain/port"
	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/trading"
	"github.com/brinevale/voyager-go/internal/domain/voyage"
	"github.com/brinevale/voyager-go/internal/domain/weather"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// WorldData is the read-only reference registry the engine plans against.
// Implementations are immutable after load.
type WorldData interface {
	Port(id string) (*world.Port, bool)
	Route(id string) (*world.Route, bool)
	ShipTemplate(id string) (*ship.Template, bool)
	CargoCategories() []world.CargoCategory
	EncounterTable() encounter.Table
}

// Dependencies wires the engine to the outside world.
type Dependencies struct {
	World     WorldData
	Weather   voyage.WeatherAdapter
	Store     voyage.StateStore
	Decisions voyage.DecisionAdapter
	Notifier  voyage.Notifier
	Journal   voyage.Journal
	Logger    *log.Logger
}

// Engine advances voyages. One engine serves many voyages; each voyage's
// state is exclusively owned while a call is in flight.
type Engine struct {
	deps Dependencies

	// newRoller builds the dice stream for one simulated day. The default
	// derives a per-day seed from the voyage seed so that reloading a saved
	// voyage mid-route replays identically; tests swap in scripted rollers.
	newRoller func(state *voyage.State) *dice.Roller
}

// NewEngine builds an engine over the given dependencies.
func NewEngine(deps Dependencies) *Engine {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Engine{
		deps: deps,
		newRoller: func(state *voyage.State) *dice.Roller {
			day := state.Config.StartDate.DaysUntil(state.CurrentDate)
			return dice.NewRoller(state.Config.Seed + int64(day)*7919)
		},
	}
}

// run bundles the per-call working set for one voyage.
type run struct {
	state      *voyage.State
	roller     *dice.Roller
	checker    *proficiency.Checker
	encounters *encounter.Engine
}

func (e *Engine) newRun(state *voyage.State) *run {
	return &run{
		state:      state,
		roller:     e.newRoller(state),
		checker:    proficiency.NewChecker(&state.Config.Captain, state.Config.Lieutenant, state.Config.CrewQuality),
		encounters: encounter.NewEngine(e.deps.World.EncounterTable()),
	}
}

// Start validates the configuration, builds the voyage state, processes the
// origin port, and persists the result. In auto mode the caller is expected
// to hand the returned id to a runner.
func (e *Engine) Start(ctx context.Context, cfg voyage.Config) (*voyage.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid voyage config: %w", err)
	}

	template, ok := e.deps.World.ShipTemplate(cfg.ShipID)
	if !ok {
		return nil, shared.NewNotFoundError("ship template", cfg.ShipID)
	}
	route, ok := e.deps.World.Route(cfg.RouteID)
	if !ok {
		return nil, shared.NewNotFoundError("route", cfg.RouteID)
	}
	legs, err := world.PlanLegs(route, e.deps.World.Port)
	if err != nil {
		return nil, fmt.Errorf("planning route %s: %w", cfg.RouteID, err)
	}

	state := &voyage.State{
		ID:              uuid.NewString(),
		Config:          cfg,
		Status:          voyage.StatusOrigin,
		Ship:            template.Instantiate(),
		Template:        *template,
		Legs:            legs,
		CurrentDate:     cfg.StartDate,
		StartingCapital: cfg.StartingGold,
	}
	state.Ledger.Open(cfg.StartDate, "Voyage capital", cfg.StartingGold)
	state.Treasury = state.Ledger.Balance()

	rc := e.newRun(state)
	state.Config.Captain.EnsureLevel(rc.roller)

	if err := e.processOrigin(ctx, rc); err != nil {
		return nil, err
	}
	if err := e.deps.Store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("saving voyage %s: %w", state.ID, err)
	}
	e.deps.Logger.Printf("voyage %s started: %s on route %s", state.ID, state.Ship.Name, route.ID)
	return state, nil
}

// SimulateDay advances a voyage exactly one day (or one port phase when the
// day ends a leg) and saves the result. This is the manual-mode step
// function; auto mode calls it in a loop.
func (e *Engine) SimulateDay(ctx context.Context, id string) (*voyage.State, error) {
	state, err := e.deps.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.Finished() {
		return state, nil
	}

	rc := e.newRun(state)
	switch state.Status {
	case voyage.StatusSailing:
		if err := e.sailDay(ctx, rc); err != nil {
			return nil, err
		}
	case voyage.StatusInPort, voyage.StatusOrigin:
		// A saved in-port phase resumes by departing on the next leg.
		e.depart(rc)
	}

	if state.Finished() {
		if err := e.finalize(ctx, rc); err != nil {
			return nil, err
		}
	}
	if err := e.deps.Store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("saving voyage %s: %w", id, err)
	}
	return state, nil
}

// Abandon drops a voyage between days.
func (e *Engine) Abandon(ctx context.Context, id string) error {
	return e.deps.Store.Delete(ctx, id)
}

// processOrigin runs the origin port phase: record the start, pay fees for
// a three-day stay, offer repairs and hiring, and load cargo.
func (e *Engine) processOrigin(ctx context.Context, rc *run) error {
	state := rc.state
	leg, ok := state.CurrentLeg()
	if !ok {
		return fmt.Errorf("voyage %s: route has no legs", state.ID)
	}
	originPort, ok := e.deps.World.Port(leg.FromID)
	if !ok {
		return shared.NewNotFoundError("port", leg.FromID)
	}

	state.VisitPort(originPort.ID)
	e.payPortFees(rc, originPort, 3)
	if err := e.offerRepairs(ctx, rc, originPort); err != nil {
		return err
	}
	if err := e.offerHiring(ctx, rc, originPort); err != nil {
		return err
	}

	if state.Config.TradeMode == voyage.TradeConsignment {
		e.loadConsignment(rc, originPort)
	} else if state.Config.AutomateTrading {
		if err := e.tradeBuy(ctx, rc, originPort); err != nil {
			return err
		}
	}

	e.depart(rc)
	return nil
}

// depart transitions from a port phase onto the current leg.
func (e *Engine) depart(rc *run) {
	state := rc.state
	leg, ok := state.CurrentLeg()
	if !ok {
		state.Status = voyage.StatusFinal
		return
	}
	state.Status = voyage.StatusSailing
	state.RemainingMiles = leg.Miles
}

// sailDay runs one sailing day in the fixed order: costs, weather,
// propulsion, hazard, encounters, calendar advance.
func (e *Engine) sailDay(ctx context.Context, rc *run) error {
	state := rc.state
	leg, ok := state.CurrentLeg()
	if !ok {
		state.Status = voyage.StatusFinal
		return nil
	}

	// A ship dead in the water cannot work her rig or oars; adrift mid-leg
	// she is lost with no port to limp into.
	if state.Ship.DeadInWater() {
		state.Status = voyage.StatusFailed
		return nil
	}

	e.accrueDailyCosts(state)

	record, err := e.deps.Weather.GenerateDayWeather(ctx)
	if err != nil {
		return fmt.Errorf("weather adapter: %w", err)
	}

	speed := e.resolvePropulsion(rc, record)

	hazard := weather.ClassifyHazard(record)
	if !speed.Becalmed && hazard.Present() {
		if sunk := e.resolveHazard(rc, hazard); sunk {
			return nil
		}
	}

	halved, err := e.resolveEncounters(ctx, rc, leg)
	if err != nil {
		return err
	}
	if state.Status == voyage.StatusFailed {
		return nil
	}

	covered := weather.ApplyHullPenalty(speed.MilesPerDay, state.Ship.SpeedPenaltyPercent())
	if state.Ship.DeadInWater() {
		// The day's damage left her unable to make way.
		covered = 0
	}
	if halved {
		covered /= 2
	}
	if covered > state.RemainingMiles {
		covered = state.RemainingMiles
	}
	state.RemainingMiles -= covered
	state.TotalDistance += covered
	if state.Cargo.Holding() {
		state.Cargo.MilesCarried += covered
	}

	if lost := state.AdvanceDay(); lost > 0 {
		if sunk := state.ApplyHullDamage("repair", "Temporary patch", lost, "patch worked loose"); sunk {
			return nil
		}
	}

	if state.RemainingMiles <= 0 {
		return e.processPort(ctx, rc)
	}
	return nil
}

// dailyCosts returns one day's wage and food expense for the current crew.
func dailyCosts(state *voyage.State) (wages, food int) {
	wages = (state.Ship.Crew.MonthlyWage() + 29) / 30
	food = (state.Ship.Crew.Total() + 4) / 5
	return wages, food
}

// accrueDailyCosts accumulates the day's wages and food into the leg cost;
// the ledger entry is flushed on arrival.
func (e *Engine) accrueDailyCosts(state *voyage.State) {
	wages, food := dailyCosts(state)
	state.LegAccumulatedCost += wages + food
	state.Breakdown.Wages += wages
	state.Breakdown.Food += food
}

// resolvePropulsion picks sail or oars for the day.
func (e *Engine) resolvePropulsion(rc *run, record weather.Record) weather.Speed {
	state := rc.state
	speed := weather.SailingSpeed(record, state.Ship.BaseSpeed(), rc.roller)
	if !speed.Becalmed {
		state.ConsecutiveRowingDays = 0
		return speed
	}
	if state.Config.EnableRowing && state.Ship.Crew.Count(ship.RoleOarsman) > 0 {
		speed = weather.RowingSpeed(state.ConsecutiveRowingDays)
		state.ConsecutiveRowingDays++
	}
	return speed
}

// resolveHazard runs the helm's piloting check against the day's weather
// and applies damage on a failure. Returns true when the ship goes down.
func (e *Engine) resolveHazard(rc *run, hazard weather.Hazard) bool {
	state := rc.state
	check := rc.checker.Check(rc.roller, proficiency.SkillPiloting, hazard.PilotingPenalty)
	if check.Success || !check.Attempted {
		return false
	}
	damage := weather.HazardDamage(hazard.Severity, check.MissMargin, rc.roller)
	return state.ApplyHullDamage("weather", hazard.Description, damage,
		fmt.Sprintf("piloting missed by %d", check.MissMargin))
}

// resolveEncounters runs the water type's scheduled checks. Returns whether
// the day's speed was halved (seaweed fouling).
func (e *Engine) resolveEncounters(ctx context.Context, rc *run, leg world.Leg) (bool, error) {
	state := rc.state
	halved := false

	slots := encounter.Schedule(leg.Water)
	for i := 0; i < len(slots); i++ {
		result, occurred, err := rc.encounters.Check(rc.roller, leg.Water, slots[i])
		if err != nil {
			return halved, err
		}
		if !occurred {
			continue
		}

		state.AppendEvent(voyage.NewEncounterEvent(state.CurrentDate, voyage.EncounterEvent{
			WaterType:      string(result.WaterType),
			Name:           result.Creature,
			Classification: string(result.Classification),
			TimeOfDay:      string(result.TimeOfDay),
			Number:         result.NumberAppearing,
			DistanceYards:  result.DistanceYards,
			Surprised:      result.Surprised,
			Description:    result.Describe(),
		}))

		switch result.Classification {
		case encounter.ClassThreat:
			if e.resolveThreat(rc, result) {
				return halved, nil
			}
		case encounter.ClassHazard:
			damage := encounter.HazardDamage(result, rc.roller)
			if damage.SpeedHalved {
				halved = true
			}
			if damage.ExtraCheck {
				slots = append(slots, slots[i])
			}
			if damage.HullDamage > 0 {
				if state.ApplyHullDamage("hazard", result.Creature, damage.HullDamage, damage.Note) {
					return halved, nil
				}
			}
		}
	}
	return halved, nil
}

// resolveThreat applies a threat encounter: mitigation first for creatures
// that can be driven off (flaming oil, then food over the side), then
// damage, crew loss, and any capsize roll. Returns true when the ship is
// lost.
func (e *Engine) resolveThreat(rc *run, result *encounter.Result) bool {
	state := rc.state

	if result.CanBeDrivenOff {
		if encounter.AttemptFlamingOil(result, rc.roller, false) {
			return false
		}
		if encounter.AttemptFood(result, rc.roller) {
			return false
		}
	}

	damage := encounter.ThreatDamage(result, rc.roller)
	if damage.CrewLoss > 0 {
		state.LoseCrew(result.Creature, damage.CrewLoss)
	}
	if damage.HullDamage > 0 {
		if state.ApplyHullDamage("encounter", result.Creature, damage.HullDamage, damage.Note) {
			return true
		}
	}

	if encounter.CanCapsize(result) && rc.roller.Chance(encounter.CapsizeChancePercent(state.Ship.Hull.Max)) {
		return state.ApplyHullDamage("encounter", result.Creature, state.Ship.Hull.Value, "capsized")
	}
	return false
}

// processPort runs a full port call at the end of the current leg.
func (e *Engine) processPort(ctx context.Context, rc *run) error {
	state := rc.state
	leg, ok := state.CurrentLeg()
	if !ok {
		state.Status = voyage.StatusFinal
		return nil
	}
	arrival, ok := e.deps.World.Port(leg.ToID)
	if !ok {
		return shared.NewNotFoundError("port", leg.ToID)
	}

	state.Status = voyage.StatusInPort
	state.VisitPort(arrival.ID)
	state.LegIndex++

	// Flush the leg's accumulated operating cost as one ledger expense.
	if state.LegAccumulatedCost > 0 {
		state.Spend(fmt.Sprintf("Provisions and wages, leg to %s", arrival.ID), state.LegAccumulatedCost, nil)
		state.LegAccumulatedCost = 0
	}

	daysInPort := 3
	if !state.AtFinalPort() {
		daysInPort = rc.roller.Between(2, 4)
	}

	activity := voyage.PortActivity{PortID: arrival.ID, Arrived: state.CurrentDate, Days: daysInPort}

	fees := e.payPortFees(rc, arrival, daysInPort)
	activity.Fees = fees.Total()

	if err := e.offerRepairs(ctx, rc, arrival); err != nil {
		return err
	}
	if err := e.offerHiring(ctx, rc, arrival); err != nil {
		return err
	}

	// In-port days: accrue costs and let the weather pass overhead.
	for day := 0; day < daysInPort; day++ {
		e.accrueDailyCosts(state)
		if _, err := e.deps.Weather.GenerateDayWeather(ctx); err != nil {
			return fmt.Errorf("weather adapter: %w", err)
		}
		state.AdvanceDay()
	}
	if state.LegAccumulatedCost > 0 {
		state.Spend(fmt.Sprintf("Harbor provisioning at %s", arrival.ID), state.LegAccumulatedCost, nil)
		state.LegAccumulatedCost = 0
	}

	if !state.AtFinalPort() {
		e.bookPassengers(rc, arrival, &activity)
		if err := e.offerCharter(ctx, rc, &activity); err != nil {
			return err
		}
	}

	if err := e.trade(ctx, rc, arrival, &activity); err != nil {
		return err
	}

	state.PortActivities = append(state.PortActivities, activity)

	if state.AtFinalPort() {
		state.Status = voyage.StatusFinal
		return nil
	}
	e.depart(rc)
	return nil
}

// payPortFees assesses and pays the visit's fees in full on entry.
func (e *Engine) payPortFees(rc *run, at *world.Port, days int) port.FeeAssessment {
	fees := port.AssessFees(rc.roller, rc.state.Ship, days)
	rc.state.Spend(fmt.Sprintf("Port fees at %s", at.ID), fees.Total(), &rc.state.Breakdown.Fees)
	return fees
}

// offerRepairs quotes the yard's options and applies the chosen repair.
func (e *Engine) offerRepairs(ctx context.Context, rc *run, at *world.Port) error {
	state := rc.state
	damage := state.Ship.Hull.Damage()
	if damage <= 0 || !at.Size.OffersRepairs() {
		return nil
	}

	options := voyage.RepairOptions{
		Professional:  port.QuoteProfessional(damage),
		Drydock:       port.QuoteDrydock(state.Ship.Hull.Max, damage, at.Size),
		SelfAvailable: port.CanSelfRepair(rc.checker),
	}
	method, accepted, err := e.deps.Decisions.ChooseRepair(ctx, state, options)
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}

	var record voyage.RepairRecord
	switch method {
	case port.RepairSelf:
		outcome, ok := port.PerformSelfRepair(rc.roller, rc.checker, state.Ship.Hull.Max, damage)
		if !ok {
			return nil
		}
		state.Ship.Repair(outcome.Quote.Points)
		for _, patch := range outcome.Patches {
			state.TempPatches = append(state.TempPatches, voyage.TempPatch{
				Points:    1,
				ExpiresOn: state.CurrentDate.AddDays(patch.ExpiresAfter),
			})
		}
		record = voyage.RepairRecord{Method: port.RepairSelf, Cost: outcome.Quote.Cost,
			Points: outcome.Quote.Points, Days: outcome.Quote.Days}
	case port.RepairDrydock:
		quote := options.Drydock
		state.Ship.Repair(quote.Points)
		record = voyage.RepairRecord{Method: method, Cost: quote.Cost, Points: quote.Points, Days: quote.Days}
	default:
		quote := options.Professional
		state.Ship.Repair(quote.Points)
		record = voyage.RepairRecord{Method: port.RepairProfessional, Cost: quote.Cost,
			Points: quote.Points, Days: quote.Days}
	}

	record.Date = state.CurrentDate
	record.PortID = at.ID
	state.Spend(fmt.Sprintf("Repairs at %s", at.ID), record.Cost, &state.Breakdown.Repairs)
	state.CurrentDate = state.CurrentDate.AddDays(record.Days)
	state.RepairLog = append(state.RepairLog, record)
	return nil
}

// offerHiring fills the crew shortfall when the port allows it and the
// decision adapter approves.
func (e *Engine) offerHiring(ctx context.Context, rc *run, at *world.Port) error {
	state := rc.state
	if !port.HiringAllowed(at.Size, state.Ship) {
		return nil
	}
	shortfall, total := port.CrewShortfall(state.Ship, &state.Template)
	if total == 0 {
		return nil
	}
	approve, err := e.deps.Decisions.ApproveHire(ctx, state, total, state.Template.Crew.Total())
	if err != nil {
		return err
	}
	if approve {
		port.HireCrew(state.Ship, shortfall)
	}
	return nil
}

// bookPassengers sells passage for the remaining route.
func (e *Engine) bookPassengers(rc *run, at *world.Port, activity *voyage.PortActivity) {
	state := rc.state
	booking := port.BookPassengers(rc.roller, at.Size, state.RemainingRouteMiles())
	if booking.Count == 0 {
		return
	}
	state.Earn(fmt.Sprintf("Passenger fares from %s", at.ID), booking.Revenue)
	state.PassengerManifest = append(state.PassengerManifest, voyage.PassengerRecord{
		Date: state.CurrentDate, PortID: at.ID, Count: booking.Count, Revenue: booking.Revenue,
	})
	activity.Notes = append(activity.Notes,
		fmt.Sprintf("Booked %d passengers for %d gp", booking.Count, booking.Revenue))
}

// offerCharter rolls for a charter opportunity and books it if accepted.
func (e *Engine) offerCharter(ctx context.Context, rc *run, activity *voyage.PortActivity) error {
	state := rc.state
	charter, offered := port.RollCharter(rc.roller)
	if !offered {
		return nil
	}
	accept, err := e.deps.Decisions.AcceptCharter(ctx, state, charter)
	if err != nil {
		return err
	}
	if !accept {
		return nil
	}
	state.Earn(fmt.Sprintf("Charter freight, %d miles", charter.DistanceMiles), charter.Fee)
	activity.Notes = append(activity.Notes,
		fmt.Sprintf("Accepted charter for %d gp", charter.Fee))
	return nil
}

// loadConsignment fills the hold with consigned freight at the origin and
// collects the front half of the transport fee.
func (e *Engine) loadConsignment(rc *run, origin *world.Port) {
	state := rc.state
	categories := e.deps.World.CargoCategories()
	if len(categories) == 0 {
		return
	}
	// Consignment freight is working cargo; the first category is the
	// registry's plainest grade.
	loads := state.Ship.CargoCapacity
	fee := market.TransportFee(state.RemainingRouteMiles()+rc.state.Legs[state.LegIndex].Miles, loads)

	state.Cargo = voyage.CargoHold{
		Category:     categories[0],
		Loads:        loads,
		Consigned:    true,
		OriginPortID: origin.ID,
		TransportFee: fee,
	}
	state.Earn(fmt.Sprintf("Consignment fee advance from %s", origin.ID), fee/2)
}

// trade runs the port's trading phase: sell or hold cargo aboard, then buy
// when the hold is free, the route continues, and the voyage speculates.
func (e *Engine) trade(ctx context.Context, rc *run, at *world.Port, activity *voyage.PortActivity) error {
	state := rc.state

	// Consigned freight rides to the final port no matter what.
	if state.Cargo.Holding() && !(state.Cargo.Consigned && !state.AtFinalPort()) {
		decision := trading.DecideSell(trading.SellContext{
			AtFinalPort:        state.AtFinalPort(),
			DistanceTraveled:   state.Cargo.MilesCarried,
			DistanceToNextPort: e.nextLegMiles(state),
		})
		sell, err := e.deps.Decisions.ApproveSell(ctx, state, decision)
		if err != nil {
			return err
		}
		if sell {
			if err := e.sellCargo(ctx, rc, at, activity); err != nil {
				return err
			}
		}
	}

	if !state.Cargo.Holding() && !state.AtFinalPort() &&
		state.Config.TradeMode == voyage.TradeSpeculation && state.Config.AutomateTrading {
		return e.tradeBuy(ctx, rc, at)
	}
	return nil
}

func (e *Engine) nextLegMiles(state *voyage.State) int {
	if leg, ok := state.CurrentLeg(); ok {
		return leg.Miles
	}
	return 0
}

// sellCargo resolves the agent question, perishability, the sale, customs,
// and the profit split, then clears the hold.
func (e *Engine) sellCargo(ctx context.Context, rc *run, at *world.Port, activity *voyage.PortActivity) error {
	state := rc.state
	hold := &state.Cargo

	// Consigned freight sells through the consignor's own factors; only a
	// speculating captain can hand the sale to a port agent.
	var agent *market.Agent
	if !hold.Consigned {
		engage, err := e.deps.Decisions.EngageAgent(ctx, state)
		if err != nil {
			return err
		}
		if engage {
			hired := market.RollAgent(rc.roller)
			agent = &hired
			activity.Notes = append(activity.Notes,
				fmt.Sprintf("Engaged a port agent (skill %d, fee %d%%)", hired.Skill, hired.FeePercent))
		}
	}

	quote := market.QuoteSale(rc.roller, rc.checker, market.SaleInput{
		Category:      hold.Category,
		Loads:         hold.Loads,
		DistanceMiles: hold.MilesCarried,
		PortSize:      at.Size,
		Agent:         agent,
	})

	perish := market.ResolvePerish(rc.roller, quote.DistanceCategory, hold.MilesCarried, hold.Loads)
	if perish.Spoiled > 0 {
		activity.Notes = append(activity.Notes,
			fmt.Sprintf("%d of %d loads spoiled on the passage", perish.Spoiled, hold.Loads))
	}
	if perish.TotalLoss() {
		hold.Clear()
		return nil
	}
	loads := perish.Remaining

	saleTotal := quote.PricePerLoad * loads
	customs := market.AssessCustoms(rc.roller, rc.checker, agent, hold.Category.BaseValue*loads)
	if customs.Caught {
		activity.Notes = append(activity.Notes, "Caught smuggling; duty levied tenfold")
	}

	if hold.Consigned {
		settlement := market.SettleConsignment(saleTotal, state.Config.CommissionRate,
			hold.MilesCarried, loads)
		state.Earn(fmt.Sprintf("Consignment delivery to %s", at.ID), settlement.OwnerPayment)
		state.CrewEarningsFromTrade += settlement.Commission
		activity.Notes = append(activity.Notes,
			fmt.Sprintf("Delivered consignment: crew commission %d gp", settlement.Commission))
	} else {
		agentFee := 0
		if agent != nil {
			agentFee = agent.Fee(saleTotal)
		}
		split := market.SplitSpeculation(saleTotal, hold.PurchaseTotal, agentFee)
		state.Earn(fmt.Sprintf("Sold %d loads of %s at %s", loads,
			hold.Category.Class, at.ID), split.Owner)
		state.CrewEarningsFromTrade += split.Crew
		activity.Notes = append(activity.Notes,
			fmt.Sprintf("Sold %d loads at %d gp/load (SA %d)", loads, quote.PricePerLoad, quote.SARoll))
	}
	state.Spend(fmt.Sprintf("Customs duty at %s", at.ID), customs.Tax, &state.Breakdown.Trading)

	hold.Clear()
	return nil
}

// tradeBuy works the port's merchants week by week and takes the first
// offer the strategy accepts. When a week's merchants all disappoint and
// waiting out another week is worth its cost, the ship sits at her moorings
// for the stragglers.
func (e *Engine) tradeBuy(ctx context.Context, rc *run, at *world.Port) error {
	state := rc.state
	categories := e.deps.World.CargoCategories()
	if len(categories) == 0 {
		return nil
	}

	total := market.MerchantCount(rc.roller, at.Size, state.Config.Captain.Abilities.Charisma)

	seen := 0
	for week := 1; ; week++ {
		available := market.MerchantsAvailableThroughWeek(total, week)
		for ; seen < available; seen++ {
			offer, err := market.RollOffer(rc.roller, rc.checker, at.Size, categories)
			if err != nil {
				return err
			}
			quote := market.QuotePurchase(rc.roller, rc.checker, offer)

			decision := trading.DecideBuy(trading.BuyContext{
				Offer: trading.BuyOffer{
					PricePerLoad:   quote.PricePerLoad,
					BaseValue:      offer.Category.BaseValue,
					LoadsAvailable: offer.Loads,
				},
				ShipCapacity:        state.Ship.CargoCapacity,
				Treasury:            state.Treasury,
				DownstreamDistances: state.DownstreamDistances(),
			})
			if !decision.Accept {
				continue
			}
			loads, err := e.deps.Decisions.ApproveBuy(ctx, state, decision, quote)
			if err != nil {
				return err
			}
			if loads <= 0 {
				continue
			}
			if loads > decision.MaxLoads {
				loads = decision.MaxLoads
			}

			cost := quote.PricePerLoad * loads
			state.Spend(fmt.Sprintf("Bought %d loads of %s at %s", loads,
				offer.Category.Class, at.ID), cost, &state.Breakdown.Trading)
			state.Cargo = voyage.CargoHold{
				Category:      offer.Category,
				Loads:         loads,
				PricePerLoad:  quote.PricePerLoad,
				PurchaseTotal: cost,
				OriginPortID:  at.ID,
			}
			return nil
		}

		if available >= total {
			return nil
		}
		wages, food := dailyCosts(state)
		fullHold := state.Ship.CargoCapacity * categories[0].BaseValue
		if !trading.DecideWait(fullHold, 7*(wages+food)) {
			return nil
		}
		// Wait out the week at the moorings for the late merchants.
		for day := 0; day < 7; day++ {
			e.accrueDailyCosts(state)
			state.AdvanceDay()
		}
	}
}

// finalize emits the report and posts the completion or failure summary.
func (e *Engine) finalize(ctx context.Context, rc *run) error {
	state := rc.state
	report := voyage.BuildReport(state)

	if state.Status == voyage.StatusFailed {
		if e.deps.Notifier != nil {
			msg := fmt.Sprintf("Voyage %s lost at sea: %s went down on %s",
				state.ID, state.Ship.Name, state.CurrentDate)
			if !state.Ship.IsSunk() {
				msg = fmt.Sprintf("Voyage %s lost at sea: %s left dead in the water on %s",
					state.ID, state.Ship.Name, state.CurrentDate)
			}
			if err := e.deps.Notifier.Notify(ctx, state.ID, msg); err != nil {
				return err
			}
		}
		return nil
	}

	if e.deps.Journal != nil {
		if err := e.deps.Journal.Emit(ctx, &report); err != nil {
			return err
		}
	}
	if e.deps.Notifier != nil {
		msg := fmt.Sprintf("Voyage %s complete: %d days, %d miles, treasury %d gp",
			state.ID, report.TotalDays, report.TotalDistance, report.Treasury)
		if err := e.deps.Notifier.Notify(ctx, state.ID, msg); err != nil {
			return err
		}
	}
	return nil
}
