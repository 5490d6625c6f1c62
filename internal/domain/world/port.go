// Package world holds the immutable geography and goods reference types:
// ports and their sailing connections, routes, water types and cargo
// categories. Registries of these are loaded once and shared read-only.
package world

import "fmt"

// PortSize grades a harbour from open anchorage to major port.
type PortSize string

const (
	PortSizeAnchorage PortSize = "ANCHORAGE"
	PortSizeMinor     PortSize = "MINOR_PORT"
	PortSizePort      PortSize = "PORT"
	PortSizeMajor     PortSize = "MAJOR_PORT"
)

// AllPortSizes returns the sizes from smallest to largest.
func AllPortSizes() []PortSize {
	return []PortSize{PortSizeAnchorage, PortSizeMinor, PortSizePort, PortSizeMajor}
}

// IsValid checks the size is one of the closed set.
func (s PortSize) IsValid() bool {
	switch s {
	case PortSizeAnchorage, PortSizeMinor, PortSizePort, PortSizeMajor:
		return true
	default:
		return false
	}
}

// MerchantModifier is the fixed merchant/demand modifier per size.
func (s PortSize) MerchantModifier() int {
	switch s {
	case PortSizeMajor:
		return 2
	case PortSizePort:
		return 1
	case PortSizeAnchorage:
		return -2
	default:
		return 0
	}
}

// OffersRepairs reports whether yards operate here (Minor Port or larger).
func (s PortSize) OffersRepairs() bool {
	return s != PortSizeAnchorage
}

func (s PortSize) String() string {
	return string(s)
}

// ParsePortSize parses a string into a PortSize.
func ParsePortSize(raw string) (PortSize, error) {
	s := PortSize(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid port size: %s", raw)
	}
	return s, nil
}

// WaterType classifies the water a leg crosses; it drives the encounter
// schedule and tables.
type WaterType string

const (
	WaterFresh   WaterType = "FRESH"
	WaterCoastal WaterType = "COASTAL"
	WaterShallow WaterType = "SHALLOW"
	WaterDeep    WaterType = "DEEP"
)

// IsValid checks the water type is one of the closed set.
func (w WaterType) IsValid() bool {
	switch w {
	case WaterFresh, WaterCoastal, WaterShallow, WaterDeep:
		return true
	default:
		return false
	}
}

func (w WaterType) String() string {
	return string(w)
}

// ParseWaterType parses a string into a WaterType.
func ParseWaterType(raw string) (WaterType, error) {
	w := WaterType(raw)
	if !w.IsValid() {
		return "", fmt.Errorf("invalid water type: %s", raw)
	}
	return w, nil
}

// Port is a harbour on the trade map.
type Port struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Size        PortSize       `json:"size" yaml:"size"`
	Water       WaterType      `json:"water" yaml:"water"`
	Connections map[string]int `json:"connections" yaml:"connections"` // port id -> miles
}

// Validate checks the port record.
func (p *Port) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("port id is required")
	}
	if !p.Size.IsValid() {
		return fmt.Errorf("port %s: invalid size %q", p.ID, p.Size)
	}
	if p.Water != "" && !p.Water.IsValid() {
		return fmt.Errorf("port %s: invalid water type %q", p.ID, p.Water)
	}
	for dest, miles := range p.Connections {
		if miles < 0 {
			return fmt.Errorf("port %s: negative distance to %s", p.ID, dest)
		}
	}
	return nil
}

// DistanceTo returns the sailing distance to a connected port.
func (p *Port) DistanceTo(portID string) (int, bool) {
	miles, ok := p.Connections[portID]
	return miles, ok
}
