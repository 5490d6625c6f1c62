package voyage

import (
	"fmt"

	"github.com/brinevale/voyager-go/internal/domain/shared"
)

// LedgerEntry is one line of the voyage's financial record. Except for the
// opening entry, Balance always equals the previous entry's balance plus
// income less expense.
type LedgerEntry struct {
	Date        shared.Date `json:"date"`
	Description string      `json:"description"`
	Income      int         `json:"income"`
	Expense     int         `json:"expense"`
	Balance     int         `json:"balance"`
	Opening     bool        `json:"opening,omitempty"`
}

// Ledger is the append-only financial record. Entries are exported for
// persistence; mutate only through Open, Credit and Debit.
type Ledger struct {
	Entries []LedgerEntry `json:"entries"`
}

// Open writes the opening entry, setting the balance directly.
func (l *Ledger) Open(date shared.Date, description string, balance int) LedgerEntry {
	entry := LedgerEntry{
		Date:        date,
		Description: description,
		Balance:     balance,
		Opening:     true,
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// Credit records income.
func (l *Ledger) Credit(date shared.Date, description string, amount int) LedgerEntry {
	entry := LedgerEntry{
		Date:        date,
		Description: description,
		Income:      amount,
		Balance:     l.Balance() + amount,
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// Debit records an expense. Balances may go negative; running out of gold is
// the captain's problem, not the ledger's.
func (l *Ledger) Debit(date shared.Date, description string, amount int) LedgerEntry {
	entry := LedgerEntry{
		Date:        date,
		Description: description,
		Expense:     amount,
		Balance:     l.Balance() - amount,
	}
	l.Entries = append(l.Entries, entry)
	return entry
}

// Balance returns the running balance, zero before the opening entry.
func (l *Ledger) Balance() int {
	if len(l.Entries) == 0 {
		return 0
	}
	return l.Entries[len(l.Entries)-1].Balance
}

// RevenueTotal sums all income lines.
func (l *Ledger) RevenueTotal() int {
	total := 0
	for _, e := range l.Entries {
		total += e.Income
	}
	return total
}

// ExpenseTotal sums all expense lines.
func (l *Ledger) ExpenseTotal() int {
	total := 0
	for _, e := range l.Entries {
		total += e.Expense
	}
	return total
}

// Verify checks the balance recurrence across the whole ledger. Used after
// loading persisted state.
func (l *Ledger) Verify() error {
	for i, e := range l.Entries {
		if i == 0 {
			if !e.Opening {
				return fmt.Errorf("ledger entry 0 is not an opening entry")
			}
			continue
		}
		if e.Opening {
			return fmt.Errorf("ledger entry %d: unexpected second opening entry", i)
		}
		want := l.Entries[i-1].Balance + e.Income - e.Expense
		if e.Balance != want {
			return fmt.Errorf("ledger entry %d (%s): balance %d, want %d",
				i, e.Description, e.Balance, want)
		}
	}
	return nil
}
