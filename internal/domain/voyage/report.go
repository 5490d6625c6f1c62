package voyage

import "github.com/brinevale/voyager-go/internal/domain/shared"

// Report is the structured record a finished voyage emits. Journal
// renderers present it; nothing in the core reads it back.
type Report struct {
	VoyageID   string `json:"voyage_id"`
	Ship       string `json:"ship"`
	Route      string `json:"route"`
	Captain    string `json:"captain"`
	Lieutenant string `json:"lieutenant,omitempty"`

	StartDate shared.Date `json:"start_date"`
	EndDate   shared.Date `json:"end_date"`
	TotalDays int         `json:"total_days"`

	TotalDistance   int `json:"total_distance"`
	FinalHull       int `json:"final_hull"`
	HullMax         int `json:"hull_max"`
	TotalHullDamage int `json:"total_hull_damage"`

	StartingCapital       int           `json:"starting_capital"`
	Treasury              int           `json:"treasury"`
	RevenueTotal          int           `json:"revenue_total"`
	ExpenseTotal          int           `json:"expense_total"`
	CrewEarningsFromTrade int           `json:"crew_earnings_from_trade"`
	Breakdown             CostBreakdown `json:"breakdown"`

	PortsVisited      []string          `json:"ports_visited"`
	PortActivities    []PortActivity    `json:"port_activities"`
	RepairLog         []RepairRecord    `json:"repair_log"`
	PassengerManifest []PassengerRecord `json:"passenger_manifest"`
	Ledger            []LedgerEntry     `json:"ledger"`
	Events            []Event           `json:"events"`

	Failed bool `json:"failed"`
}

// BuildReport assembles the report from a terminal voyage state.
func BuildReport(s *State) Report {
	shipName := ""
	if s.Ship != nil {
		shipName = s.Ship.Name
	}
	lieutenant := ""
	if s.Config.Lieutenant != nil {
		lieutenant = s.Config.Lieutenant.Name
	}
	report := Report{
		VoyageID:   s.ID,
		Ship:       shipName,
		Route:      s.Config.RouteID,
		Captain:    s.Config.Captain.Name,
		Lieutenant: lieutenant,

		StartDate: s.Config.StartDate,
		EndDate:   s.CurrentDate,
		TotalDays: s.Config.StartDate.DaysUntil(s.CurrentDate),

		TotalDistance:   s.TotalDistance,
		TotalHullDamage: s.TotalHullDamage,

		StartingCapital:       s.StartingCapital,
		Treasury:              s.Treasury,
		RevenueTotal:          s.Ledger.RevenueTotal(),
		ExpenseTotal:          s.Ledger.ExpenseTotal(),
		CrewEarningsFromTrade: s.CrewEarningsFromTrade,
		Breakdown:             s.Breakdown,

		PortsVisited:      s.PortsVisited,
		PortActivities:    s.PortActivities,
		RepairLog:         s.RepairLog,
		PassengerManifest: s.PassengerManifest,
		Ledger:            s.Ledger.Entries,
		Events:            s.Events,

		Failed: s.Status == StatusFailed,
	}
	if s.Ship != nil {
		report.FinalHull = s.Ship.Hull.Value
		report.HullMax = s.Ship.Hull.Max
	}
	return report
}
