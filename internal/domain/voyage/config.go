// Package voyage holds the voyage aggregate: configuration, the mutable
// state a running voyage owns exclusively, its append-only ledger and event
// stream, the final report, and the capability interfaces the engine needs
// from the outside world.
package voyage

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/brinevale/voyager-go/internal/domain/proficiency"
	"github.com/brinevale/voyager-go/internal/domain/shared"
)

// Mode selects how a voyage advances: auto runs to completion, manual
// advances one day per call.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

// TradeMode selects the trading arrangement for the voyage.
type TradeMode string

const (
	TradeSpeculation TradeMode = "speculation"
	TradeConsignment TradeMode = "consignment"
)

// Config enumerates everything a voyage can be started with.
type Config struct {
	ShipID  string `json:"ship_id" yaml:"ship_id" validate:"required"`
	RouteID string `json:"route_id" yaml:"route_id" validate:"required"`

	Mode      Mode      `json:"mode" yaml:"mode" validate:"required,oneof=auto manual"`
	TradeMode TradeMode `json:"trade_mode" yaml:"trade_mode" validate:"required,oneof=speculation consignment"`

	// CommissionRate is the crew's cut of consignment sales, in percent.
	// Only read in consignment mode.
	CommissionRate int `json:"commission_rate" yaml:"commission_rate" validate:"omitempty,min=10,max=40"`

	Captain    proficiency.Officer  `json:"captain" yaml:"captain"`
	Lieutenant *proficiency.Officer `json:"lieutenant,omitempty" yaml:"lieutenant,omitempty"`

	StartingGold int `json:"starting_gold" yaml:"starting_gold" validate:"min=0"`

	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`

	AutoRepair      bool `json:"auto_repair" yaml:"auto_repair"`
	EnableRowing    bool `json:"enable_rowing" yaml:"enable_rowing"`
	AutomateTrading bool `json:"automate_trading" yaml:"automate_trading"`

	StartDate   shared.Date        `json:"start_date" yaml:"start_date"`
	CrewQuality shared.CrewQuality `json:"crew_quality" yaml:"crew_quality"`

	// Seed drives every roll the voyage makes; a fixed seed replays the
	// voyage exactly.
	Seed int64 `json:"seed" yaml:"seed"`
}

// tagValidator checks the struct's validate tags. One shared instance;
// validator.New compiles the tag cache.
var tagValidator = validator.New()

// Validate runs the struct tags, then the semantic rules the tags cannot
// express.
func (c *Config) Validate() error {
	if err := tagValidator.Struct(c); err != nil {
		return fmt.Errorf("voyage config: %w", err)
	}
	if err := c.Captain.Validate(); err != nil {
		return fmt.Errorf("captain: %w", err)
	}
	if c.Lieutenant != nil {
		if err := c.Lieutenant.Validate(); err != nil {
			return fmt.Errorf("lieutenant: %w", err)
		}
	}
	if !c.CrewQuality.IsValid() {
		return shared.NewValidationError("crew_quality", fmt.Sprintf("invalid crew quality %q", c.CrewQuality))
	}
	if err := c.StartDate.Validate(); err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	if c.TradeMode == TradeConsignment && (c.CommissionRate < 10 || c.CommissionRate > 40) {
		return shared.NewValidationError("commission_rate", "consignment commission must lie in [10,40]")
	}
	return nil
}
