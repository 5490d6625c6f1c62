package voyage

import (
	"fmt"

	"github.com/brinevale/voyager-go/internal/domain/port"
	"github.com/brinevale/voyager-go/internal/domain/shared"
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

// Status is the voyage state machine position.
type Status string

const (
	StatusOrigin  Status = "ORIGIN"
	StatusSailing Status = "SAILING"
	StatusInPort  Status = "IN_PORT"
	StatusFinal   Status = "FINAL"
	StatusFailed  Status = "FAILED"
)

// CargoHold is the cargo currently aboard. Loads > 0 implies a category is
// set; a full sale or total spoilage clears the hold entirely.
type CargoHold struct {
	Category       world.CargoCategory `json:"category"`
	Loads          int                 `json:"loads"`
	PricePerLoad   int                 `json:"price_per_load"` // purchase price, 0 for consignment
	PurchaseTotal  int                 `json:"purchase_total"`
	Consigned      bool                `json:"consigned"`
	OriginPortID   string              `json:"origin_port_id"`
	MilesCarried   int                 `json:"miles_carried"`
	TransportFee   int                 `json:"transport_fee,omitempty"` // consignment only, full fee
}

// Holding reports cargo aboard.
func (c *CargoHold) Holding() bool {
	return c.Loads > 0
}

// Clear empties the hold after a full sale or total spoilage.
func (c *CargoHold) Clear() {
	*c = CargoHold{}
}

// CostBreakdown attributes voyage expenses by kind.
type CostBreakdown struct {
	Wages   int `json:"wages"`
	Food    int `json:"food"`
	Fees    int `json:"fees"`
	Repairs int `json:"repairs"`
	Trading int `json:"trading"`
	Other   int `json:"other"`
}

// PortActivity summarizes one port call for the report.
type PortActivity struct {
	PortID  string      `json:"port_id"`
	Arrived shared.Date `json:"arrived"`
	Days    int         `json:"days"`
	Fees    int         `json:"fees"`
	Notes   []string    `json:"notes,omitempty"`
}

// RepairRecord is one repair job in the repair log.
type RepairRecord struct {
	Date   shared.Date       `json:"date"`
	PortID string            `json:"port_id"`
	Method port.RepairMethod `json:"method"`
	Cost   int               `json:"cost"`
	Points int               `json:"points"`
	Days   int               `json:"days"`
}

// PassengerRecord is one passenger booking in the manifest.
type PassengerRecord struct {
	Date    shared.Date `json:"date"`
	PortID  string      `json:"port_id"`
	Count   int         `json:"count"`
	Revenue int         `json:"revenue"`
}

// TempPatch is a temporary self-repair hull point with its expiry date.
type TempPatch struct {
	Points    int         `json:"points"`
	ExpiresOn shared.Date `json:"expires_on"`
}

// State is the voyage aggregate. It is created by start_voyage, owned
// exclusively by one engine, and mutated only between its suspension
// points. Everything here round-trips through the state store.
type State struct {
	ID     string `json:"id"`
	Config Config `json:"config"`
	Status Status `json:"status"`

	Ship     *ship.Ship    `json:"ship"`
	Template ship.Template `json:"template"`
	Legs     []world.Leg   `json:"legs"`

	LegIndex       int `json:"leg_index"`
	RemainingMiles int `json:"remaining_miles"`

	CurrentDate shared.Date `json:"current_date"`

	StartingCapital       int `json:"starting_capital"`
	Treasury              int `json:"treasury"`
	LegAccumulatedCost    int `json:"leg_accumulated_cost"`
	CrewEarningsFromTrade int `json:"crew_earnings_from_trade"`

	ConsecutiveRowingDays int `json:"consecutive_rowing_days"`
	TotalDistance         int `json:"total_distance"`
	TotalHullDamage       int `json:"total_hull_damage"`

	Cargo     CargoHold     `json:"cargo"`
	Ledger    Ledger        `json:"ledger"`
	Breakdown CostBreakdown `json:"breakdown"`

	Events            []Event           `json:"events"`
	PortsVisited      []string          `json:"ports_visited"`
	PortActivities    []PortActivity    `json:"port_activities"`
	RepairLog         []RepairRecord    `json:"repair_log"`
	PassengerManifest []PassengerRecord `json:"passenger_manifest"`
	TempPatches       []TempPatch       `json:"temp_patches,omitempty"`

	LastPortID string `json:"last_port_id"`
}

// AtSea reports the voyage is mid-leg.
func (s *State) AtSea() bool { return s.Status == StatusSailing }

// InPort reports the voyage is processing a port call.
func (s *State) InPort() bool { return s.Status == StatusOrigin || s.Status == StatusInPort }

// Finished reports a terminal state.
func (s *State) Finished() bool { return s.Status == StatusFinal || s.Status == StatusFailed }

// CurrentLeg returns the leg being sailed, or false past the route's end.
func (s *State) CurrentLeg() (world.Leg, bool) {
	if s.LegIndex < 0 || s.LegIndex >= len(s.Legs) {
		return world.Leg{}, false
	}
	return s.Legs[s.LegIndex], true
}

// AtFinalPort reports the voyage has no legs left to sail.
func (s *State) AtFinalPort() bool {
	return s.LegIndex >= len(s.Legs)
}

// DownstreamDistances returns the cumulative miles from the current port to
// each remaining destination, for the buy strategy.
func (s *State) DownstreamDistances() []int {
	var distances []int
	total := 0
	for i := s.LegIndex; i < len(s.Legs); i++ {
		total += s.Legs[i].Miles
		distances = append(distances, total)
	}
	return distances
}

// RemainingRouteMiles sums every mile left to sail.
func (s *State) RemainingRouteMiles() int {
	total := s.RemainingMiles
	for i := s.LegIndex + 1; i < len(s.Legs); i++ {
		total += s.Legs[i].Miles
	}
	return total
}

// Earn records income on the ledger and syncs the treasury.
func (s *State) Earn(description string, amount int) {
	if amount <= 0 {
		return
	}
	s.Ledger.Credit(s.CurrentDate, description, amount)
	s.Treasury = s.Ledger.Balance()
}

// Spend records an expense on the ledger, syncs the treasury, and
// attributes the amount to the given breakdown bucket.
func (s *State) Spend(description string, amount int, bucket *int) {
	if amount <= 0 {
		return
	}
	s.Ledger.Debit(s.CurrentDate, description, amount)
	s.Treasury = s.Ledger.Balance()
	if bucket != nil {
		*bucket += amount
	}
}

// AppendEvent appends to the event stream. Events are never mutated after
// this.
func (s *State) AppendEvent(event Event) {
	s.Events = append(s.Events, event)
}

// ApplyHullDamage damages the ship, records the event, and reports whether
// the ship went down. A sinking transitions the voyage to Failed.
func (s *State) ApplyHullDamage(source, sourceName string, points int, note string) bool {
	absorbed := s.Ship.ApplyHullDamage(points)
	if absorbed <= 0 {
		return false
	}
	s.TotalHullDamage += absorbed
	s.AppendEvent(NewDamageEvent(s.CurrentDate, DamageEvent{
		Source:        source,
		SourceName:    sourceName,
		HullDamage:    absorbed,
		HullRemaining: s.Ship.Hull.Value,
		Note:          note,
	}))
	if s.Ship.IsSunk() {
		s.Status = StatusFailed
		return true
	}
	return false
}

// LoseCrew removes casualties from the complement and records the event.
func (s *State) LoseCrew(sourceName string, count int) int {
	crew, removed := s.Ship.Crew.RemoveCasualties(count)
	s.Ship.Crew = crew
	if removed > 0 {
		s.AppendEvent(NewCrewLossEvent(s.CurrentDate, CrewLossEvent{
			SourceName: sourceName,
			Count:      removed,
		}))
	}
	return removed
}

// VisitPort pushes a port onto the visited list and marks it current.
func (s *State) VisitPort(portID string) {
	s.PortsVisited = append(s.PortsVisited, portID)
	s.LastPortID = portID
}

// AdvanceDay moves the calendar one day and expires due temporary patches,
// returning the hull points lost to failed patches.
func (s *State) AdvanceDay() int {
	s.CurrentDate = s.CurrentDate.Next()

	lost := 0
	kept := s.TempPatches[:0]
	for _, patch := range s.TempPatches {
		if s.CurrentDate.DaysUntil(patch.ExpiresOn) <= 0 {
			lost += patch.Points
		} else {
			kept = append(kept, patch)
		}
	}
	s.TempPatches = kept
	return lost
}

// Validate checks aggregate invariants after a load from the store.
func (s *State) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("voyage id is empty")
	}
	if s.Ship == nil {
		return fmt.Errorf("voyage %s: no ship", s.ID)
	}
	if s.Ship.Hull.Value < 0 || s.Ship.Hull.Value > s.Ship.Hull.Max {
		return fmt.Errorf("voyage %s: hull %d outside [0,%d]", s.ID, s.Ship.Hull.Value, s.Ship.Hull.Max)
	}
	if s.Cargo.Loads < 0 {
		return fmt.Errorf("voyage %s: negative cargo loads", s.ID)
	}
	if s.Cargo.Loads > 0 && !s.Cargo.Category.Class.IsValid() {
		return fmt.Errorf("voyage %s: cargo aboard with no category", s.ID)
	}
	if err := s.Ledger.Verify(); err != nil {
		return fmt.Errorf("voyage %s: %w", s.ID, err)
	}
	if len(s.Ledger.Entries) > 0 && s.Treasury != s.Ledger.Balance() {
		return fmt.Errorf("voyage %s: treasury %d does not match ledger balance %d",
			s.ID, s.Treasury, s.Ledger.Balance())
	}
	return nil
}
