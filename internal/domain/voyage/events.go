package voyage

import "github.com/brinevale/voyager-go/internal/domain/shared"

// EventType tags an entry in the voyage's event stream.
type EventType string

const (
	EventDamage    EventType = "damage"
	EventEncounter EventType = "encounter"
	EventCrewLoss  EventType = "crew_loss"
)

// DamageEvent records hull damage from any source.
type DamageEvent struct {
	Source        string `json:"source"` // weather, encounter, hazard
	SourceName    string `json:"source_name"`
	HullDamage    int    `json:"hull_damage"`
	HullRemaining int    `json:"hull_remaining"`
	Note          string `json:"note,omitempty"`
}

// EncounterEvent records a resolved sea encounter.
type EncounterEvent struct {
	WaterType      string `json:"water_type"`
	Name           string `json:"name"`
	Classification string `json:"classification"`
	TimeOfDay      string `json:"time_of_day"`
	Number         int    `json:"number"`
	DistanceYards  int    `json:"distance_yards"`
	Surprised      bool   `json:"surprised"`
	Description    string `json:"description"`
}

// CrewLossEvent records crew taken by an encounter.
type CrewLossEvent struct {
	SourceName string `json:"source_name"`
	Count      int    `json:"count"`
}

// Event is one tagged record in the append-only event stream. Exactly one
// payload field is set, matching Type.
type Event struct {
	Type      EventType       `json:"type"`
	Date      shared.Date     `json:"date"`
	Damage    *DamageEvent    `json:"damage,omitempty"`
	Encounter *EncounterEvent `json:"encounter,omitempty"`
	CrewLoss  *CrewLossEvent  `json:"crew_loss,omitempty"`
}

// NewDamageEvent builds a damage event.
func NewDamageEvent(date shared.Date, payload DamageEvent) Event {
	return Event{Type: EventDamage, Date: date, Damage: &payload}
}

// NewEncounterEvent builds an encounter event.
func NewEncounterEvent(date shared.Date, payload EncounterEvent) Event {
	return Event{Type: EventEncounter, Date: date, Encounter: &payload}
}

// NewCrewLossEvent builds a crew-loss event.
func NewCrewLossEvent(date shared.Date, payload CrewLossEvent) Event {
	return Event{Type: EventCrewLoss, Date: date, CrewLoss: &payload}
}
