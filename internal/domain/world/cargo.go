package world

import "fmt"

// CargoClass is the quality grade of a trade cargo. A load is a half-ton
// unit; base value is gp per load.
type CargoClass string

const (
	CargoPrimitive CargoClass = "PRIMITIVE"
	CargoConsumer  CargoClass = "CONSUMER"
	CargoComfort   CargoClass = "COMFORT"
	CargoFine      CargoClass = "FINE"
	CargoPrecious  CargoClass = "PRECIOUS"
)

// AllCargoClasses returns the grades from cheapest to dearest.
func AllCargoClasses() []CargoClass {
	return []CargoClass{CargoPrimitive, CargoConsumer, CargoComfort, CargoFine, CargoPrecious}
}

// IsValid checks the class is one of the closed set.
func (c CargoClass) IsValid() bool {
	switch c {
	case CargoPrimitive, CargoConsumer, CargoComfort, CargoFine, CargoPrecious:
		return true
	default:
		return false
	}
}

func (c CargoClass) String() string {
	return string(c)
}

// ParseCargoClass parses a string into a CargoClass.
func ParseCargoClass(raw string) (CargoClass, error) {
	c := CargoClass(raw)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid cargo class: %s", raw)
	}
	return c, nil
}

// CargoCategory is a registry entry: a cargo class with its base value and
// the 3d6 range that selects it when a merchant's offer is determined.
type CargoCategory struct {
	Class     CargoClass `json:"class" yaml:"class"`
	BaseValue int        `json:"base_value" yaml:"base_value"` // gp per load
	RollMin   int        `json:"roll_min" yaml:"roll_min"`
	RollMax   int        `json:"roll_max" yaml:"roll_max"`
}

// Validate checks the category record.
func (c *CargoCategory) Validate() error {
	if !c.Class.IsValid() {
		return fmt.Errorf("invalid cargo class %q", c.Class)
	}
	if c.BaseValue <= 0 {
		return fmt.Errorf("cargo %s: base_value must be positive", c.Class)
	}
	if c.RollMin > c.RollMax {
		return fmt.Errorf("cargo %s: roll range inverted", c.Class)
	}
	return nil
}

// CategoryForRoll maps an adjusted 3d6 determination roll to a category.
// Rolls below every range clamp to the first category, above to the last.
func CategoryForRoll(categories []CargoCategory, roll int) (CargoCategory, error) {
	if len(categories) == 0 {
		return CargoCategory{}, fmt.Errorf("no cargo categories loaded")
	}
	for _, cat := range categories {
		if roll >= cat.RollMin && roll <= cat.RollMax {
			return cat, nil
		}
	}
	if roll < categories[0].RollMin {
		return categories[0], nil
	}
	return categories[len(categories)-1], nil
}
