// Package journal renders finished-voyage reports and progress
// notifications. The text journal writes a human log, the JSON journal a
// machine-readable document; both implement the engine's Journal port.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/brinevale/voyager-go/internal/domain/voyage"
)

// TextJournal renders reports as a readable voyage log.
type TextJournal struct {
	out io.Writer
}

// NewTextJournal writes rendered reports to out.
func NewTextJournal(out io.Writer) *TextJournal {
	return &TextJournal{out: out}
}

// Emit renders the report.
func (j *TextJournal) Emit(ctx context.Context, report *voyage.Report) error {
	_, err := io.WriteString(j.out, RenderText(report))
	return err
}

// JSONJournal writes reports as indented JSON documents.
type JSONJournal struct {
	out io.Writer
}

// NewJSONJournal writes JSON reports to out.
func NewJSONJournal(out io.Writer) *JSONJournal {
	return &JSONJournal{out: out}
}

// Emit encodes the report.
func (j *JSONJournal) Emit(ctx context.Context, report *voyage.Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderText builds the text form of a report.
func RenderText(r *voyage.Report) string {
	var b strings.Builder

	title := "Voyage Report"
	if r.Failed {
		title = "Voyage Report (LOST AT SEA)"
	}
	fmt.Fprintf(&b, "%s: %s\n", title, r.VoyageID)
	fmt.Fprintf(&b, "%s on route %s\n", r.Ship, r.Route)
	if r.Lieutenant != "" {
		fmt.Fprintf(&b, "Captain %s, Lieutenant %s\n", r.Captain, r.Lieutenant)
	} else {
		fmt.Fprintf(&b, "Captain %s\n", r.Captain)
	}
	fmt.Fprintf(&b, "%s to %s: %d days, %d miles\n\n",
		r.StartDate, r.EndDate, r.TotalDays, r.TotalDistance)

	fmt.Fprintf(&b, "Hull %d/%d, %d damage taken over the voyage\n",
		r.FinalHull, r.HullMax, r.TotalHullDamage)
	fmt.Fprintf(&b, "Treasury %d gp (started with %d)\n", r.Treasury, r.StartingCapital)
	fmt.Fprintf(&b, "Revenue %d gp, expenses %d gp", r.RevenueTotal, r.ExpenseTotal)
	if r.CrewEarningsFromTrade > 0 {
		fmt.Fprintf(&b, ", crew trade shares %d gp", r.CrewEarningsFromTrade)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Costs: wages %d, food %d, fees %d, repairs %d, trading %d, other %d\n\n",
		r.Breakdown.Wages, r.Breakdown.Food, r.Breakdown.Fees,
		r.Breakdown.Repairs, r.Breakdown.Trading, r.Breakdown.Other)

	if len(r.PortsVisited) > 0 {
		fmt.Fprintf(&b, "Ports visited: %s\n", strings.Join(r.PortsVisited, ", "))
	}
	for _, call := range r.PortActivities {
		fmt.Fprintf(&b, "  %s: arrived %s, %d days in port, %d gp in fees\n",
			call.PortID, call.Arrived, call.Days, call.Fees)
		for _, note := range call.Notes {
			fmt.Fprintf(&b, "    %s\n", note)
		}
	}

	if len(r.RepairLog) > 0 {
		b.WriteString("\nRepairs:\n")
		for _, job := range r.RepairLog {
			fmt.Fprintf(&b, "  %s at %s: %s, %d points over %d days for %d gp\n",
				job.Date, job.PortID, job.Method, job.Points, job.Days, job.Cost)
		}
	}

	if len(r.PassengerManifest) > 0 {
		b.WriteString("\nPassengers:\n")
		for _, booking := range r.PassengerManifest {
			fmt.Fprintf(&b, "  %s from %s: %d berths for %d gp\n",
				booking.Date, booking.PortID, booking.Count, booking.Revenue)
		}
	}

	if len(r.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, ev := range r.Events {
			fmt.Fprintf(&b, "  %s  %s\n", ev.Date, describeEvent(ev))
		}
	}

	if len(r.Ledger) > 0 {
		b.WriteString("\nLedger:\n")
		tw := tabwriter.NewWriter(&b, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  date\tdescription\tincome\texpense\tbalance")
		for _, entry := range r.Ledger {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%d\n",
				entry.Date, entry.Description, entry.Income, entry.Expense, entry.Balance)
		}
		tw.Flush()
	}

	return b.String()
}

func describeEvent(ev voyage.Event) string {
	switch {
	case ev.Damage != nil:
		note := ""
		if ev.Damage.Note != "" {
			note = " (" + ev.Damage.Note + ")"
		}
		return fmt.Sprintf("%s: %d hull damage from %s, %d remaining%s",
			ev.Damage.Source, ev.Damage.HullDamage, ev.Damage.SourceName,
			ev.Damage.HullRemaining, note)
	case ev.Encounter != nil:
		return fmt.Sprintf("%s at %s: %s", strings.ToLower(ev.Encounter.Classification),
			strings.ToLower(ev.Encounter.TimeOfDay), ev.Encounter.Description)
	case ev.CrewLoss != nil:
		return fmt.Sprintf("lost %d crew to %s", ev.CrewLoss.Count, ev.CrewLoss.SourceName)
	default:
		return string(ev.Type)
	}
}
