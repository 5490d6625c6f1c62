package world

import "fmt"

// Route is an ordered list of port ids. A circuit closes back to its first
// port; the closing leg is appended when the voyage is planned.
type Route struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Ports   []string `json:"ports" yaml:"ports"`
	Circuit bool     `json:"circuit" yaml:"circuit"`
}

// Validate checks the route has at least two ports and no immediate repeats.
func (r *Route) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("route id is required")
	}
	if len(r.Ports) < 2 {
		return fmt.Errorf("route %s: needs at least two ports", r.ID)
	}
	for i := 1; i < len(r.Ports); i++ {
		if r.Ports[i] == r.Ports[i-1] {
			return fmt.Errorf("route %s: port %s repeats consecutively", r.ID, r.Ports[i])
		}
	}
	return nil
}

// Waypoints returns the full port sequence the voyage sails, including the
// closing leg for circuits.
func (r *Route) Waypoints() []string {
	points := make([]string, len(r.Ports))
	copy(points, r.Ports)
	if r.Circuit && points[len(points)-1] != points[0] {
		points = append(points, points[0])
	}
	return points
}

// Leg is a directed port-to-port segment of a planned route.
type Leg struct {
	Index    int       `json:"index"`
	FromID   string    `json:"from_id"`
	ToID     string    `json:"to_id"`
	Miles    int       `json:"miles"`
	Water    WaterType `json:"water"`
	IsReturn bool      `json:"is_return"` // closing leg of a circuit
}

// PlanLegs resolves a route into legs using a port lookup. Distances come
// from each origin port's connection table; the leg's water type is the
// deeper of the two endpoints' waters when they differ.
func PlanLegs(route *Route, lookup func(id string) (*Port, bool)) ([]Leg, error) {
	points := route.Waypoints()
	legs := make([]Leg, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		from, ok := lookup(points[i])
		if !ok {
			return nil, fmt.Errorf("route %s: unknown port %s", route.ID, points[i])
		}
		to, ok := lookup(points[i+1])
		if !ok {
			return nil, fmt.Errorf("route %s: unknown port %s", route.ID, points[i+1])
		}
		miles, ok := from.DistanceTo(to.ID)
		if !ok {
			return nil, fmt.Errorf("route %s: no connection %s -> %s", route.ID, from.ID, to.ID)
		}
		legs = append(legs, Leg{
			Index:    i,
			FromID:   from.ID,
			ToID:     to.ID,
			Miles:    miles,
			Water:    deeperWater(from.Water, to.Water),
			IsReturn: route.Circuit && i == len(points)-2,
		})
	}
	return legs, nil
}

// deeperWater prefers the riskier open water when a leg joins two coasts.
func deeperWater(a, b WaterType) WaterType {
	rank := func(w WaterType) int {
		switch w {
		case WaterFresh:
			return 0
		case WaterCoastal:
			return 1
		case WaterShallow:
			return 2
		case WaterDeep:
			return 3
		default:
			return 1
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	if a == "" {
		return WaterCoastal
	}
	return a
}
