// Package ship models vessel templates and the mutable ship instance a
// voyage sails. Instances are deep clones; nothing a voyage does can touch
// the template it came from.
package ship

import "fmt"

// MilesPerMovement converts a template's abstract movement rating into a
// base sailing speed: one movement unit is 8 miles per day.
const MilesPerMovement = 8

// Hull tracks vessel integrity. Value stays within [0, Max]; at zero the
// ship sinks.
type Hull struct {
	Value int `json:"value" yaml:"value"`
	Max   int `json:"max" yaml:"max"`
}

// DamagePercent returns hull damage as a whole percentage of Max.
func (h Hull) DamagePercent() int {
	if h.Max <= 0 {
		return 0
	}
	return (h.Max - h.Value) * 100 / h.Max
}

// Damage returns missing hull points.
func (h Hull) Damage() int {
	return h.Max - h.Value
}

// Template describes a ship class from the registry. Templates are immutable
// after load.
type Template struct {
	ID            string     `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	ShipType      string     `json:"ship_type" yaml:"ship_type"`
	HullMax       int        `json:"hull_max" yaml:"hull_max"`
	CargoCapacity int        `json:"cargo_capacity" yaml:"cargo_capacity"`
	Movement      int        `json:"movement" yaml:"movement"`
	Crew          Complement `json:"crew" yaml:"crew"`
}

// Validate checks template fields make a sailable ship.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("ship template id is required")
	}
	if t.HullMax <= 0 {
		return fmt.Errorf("ship %s: hull_max must be positive", t.ID)
	}
	if t.CargoCapacity < 0 {
		return fmt.Errorf("ship %s: cargo_capacity cannot be negative", t.ID)
	}
	if t.Movement <= 0 {
		return fmt.Errorf("ship %s: movement must be positive", t.ID)
	}
	for _, slot := range t.Crew {
		if !slot.Role.IsValid() {
			return fmt.Errorf("ship %s: invalid crew role %q", t.ID, slot.Role)
		}
		if slot.Count < 0 {
			return fmt.Errorf("ship %s: negative crew count for %s", t.ID, slot.Role)
		}
	}
	return nil
}

// Ship is a sailing instance of a template. Mutations during a voyage never
// affect the template.
type Ship struct {
	Name          string     `json:"name"`
	ShipType      string     `json:"ship_type"`
	TemplateID    string     `json:"template_id"`
	Hull          Hull       `json:"hull"`
	CargoCapacity int        `json:"cargo_capacity"`
	Movement      int        `json:"movement"`
	Crew          Complement `json:"crew"`
}

// Instantiate builds a fresh ship from the template.
func (t *Template) Instantiate() *Ship {
	return &Ship{
		Name:          t.Name,
		ShipType:      t.ShipType,
		TemplateID:    t.ID,
		Hull:          Hull{Value: t.HullMax, Max: t.HullMax},
		CargoCapacity: t.CargoCapacity,
		Movement:      t.Movement,
		Crew:          t.Crew.Clone(),
	}
}

// BaseSpeed returns the full-sail speed in miles per day.
func (s *Ship) BaseSpeed() int {
	return s.Movement * MilesPerMovement
}

// ApplyHullDamage reduces hull by the given points, flooring at zero, and
// returns the points actually absorbed.
func (s *Ship) ApplyHullDamage(points int) int {
	if points <= 0 {
		return 0
	}
	if points > s.Hull.Value {
		points = s.Hull.Value
	}
	s.Hull.Value -= points
	return points
}

// Repair restores hull points, capping at Max, and returns the points
// actually restored.
func (s *Ship) Repair(points int) int {
	if points <= 0 {
		return 0
	}
	missing := s.Hull.Max - s.Hull.Value
	if points > missing {
		points = missing
	}
	s.Hull.Value += points
	return points
}

// IsSunk reports whether the hull has reached zero.
func (s *Ship) IsSunk() bool {
	return s.Hull.Value <= 0
}

// SpeedPenaltyPercent is the sailing-speed penalty from hull damage: ten
// percent per full ten percent of damage.
func (s *Ship) SpeedPenaltyPercent() int {
	return 10 * (s.Hull.DamagePercent() / 10)
}

// DeadInWater reports whether damage has made the ship unsailable (75%+).
func (s *Ship) DeadInWater() bool {
	return s.Hull.DamagePercent() >= 75
}

// RequiredCrew computes the shortfall against the template complement per
// role. Roles at or over requirement are omitted.
func (s *Ship) RequiredCrew(template *Template) map[CrewRole]int {
	shortfall := make(map[CrewRole]int)
	for _, slot := range template.Crew {
		have := s.Crew.Count(slot.Role)
		if have < slot.Count {
			shortfall[slot.Role] = slot.Count - have
		}
	}
	return shortfall
}

func (s *Ship) String() string {
	return fmt.Sprintf("%s (%s, hull %d/%d)", s.Name, s.ShipType, s.Hull.Value, s.Hull.Max)
}
