package shared

import (
	"fmt"
	"strings"
)

// The trading calendar has sixteen months of thirty days each. Weather and
// wage proration only care about whole days, so no leap handling exists.
const (
	MonthsPerYear = 16
	DaysPerMonth  = 30
	DaysPerYear   = MonthsPerYear * DaysPerMonth
)

// MonthNames lists the sixteen months in calendar order.
var MonthNames = [MonthsPerYear]string{
	"Deepfrost",
	"Icewane",
	"Thawmoon",
	"Seedfall",
	"Rainmarch",
	"Brightwater",
	"Highsun",
	"Goldcalm",
	"Saltharvest",
	"Emberwane",
	"Mistfall",
	"Stormwatch",
	"Greyswell",
	"Longdark",
	"Frostwind",
	"Yearsend",
}

// Date is a day on the sixteen-month trading calendar. Month is 1-based.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// NewDate validates and builds a calendar date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// ParseMonth resolves a month name (case-insensitive) to its 1-based index.
func ParseMonth(name string) (int, error) {
	for i, m := range MonthNames {
		if strings.EqualFold(m, name) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

// Validate checks the date lies on the calendar.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > MonthsPerYear {
		return fmt.Errorf("month %d out of range [1,%d]", d.Month, MonthsPerYear)
	}
	if d.Day < 1 || d.Day > DaysPerMonth {
		return fmt.Errorf("day %d out of range [1,%d]", d.Day, DaysPerMonth)
	}
	return nil
}

// MonthName returns the month's name, or "?" for an invalid month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > MonthsPerYear {
		return "?"
	}
	return MonthNames[d.Month-1]
}

// AddDays returns the date the given number of days later.
func (d Date) AddDays(days int) Date {
	total := d.ordinal() + days
	year := d.Year + total/DaysPerYear
	total %= DaysPerYear
	if total < 0 {
		total += DaysPerYear
		year--
	}
	return Date{
		Year:  year,
		Month: total/DaysPerMonth + 1,
		Day:   total%DaysPerMonth + 1,
	}
}

// Next returns the following day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// DaysUntil returns the day count from d to other (negative if other is earlier).
func (d Date) DaysUntil(other Date) int {
	return other.ordinal() + other.Year*DaysPerYear - (d.ordinal() + d.Year*DaysPerYear)
}

// ordinal is the zero-based day-of-year.
func (d Date) ordinal() int {
	return (d.Month-1)*DaysPerMonth + (d.Day - 1)
}

// String renders as "14 Stormwatch 1247".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, d.MonthName(), d.Year)
}
