// Package billing keeps an append-only, in-memory record of every paid
// API call the bot makes, together with pure cost functions for the
// transcription and chat-completion services.
package billing

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultExchangeRate is the fixed USD to UZS conversion rate applied to
// every recorded cost.
const DefaultExchangeRate = 20000.2

// EmptyBalanceMessage is returned by Summarize when nothing has been
// recorded yet.
const EmptyBalanceMessage = "Balance is empty. No entries."

// Entry is one billable event. Entries are immutable once recorded.
type Entry struct {
	Service     string  // service/model identifier, e.g. "whisper-1"
	RawCost     float64 // cost in USD
	DisplayCost float64 // RawCost converted to UZS
	Tokens      int     // tokens consumed, 0 for per-minute services
	Note        string
}

// Ledger is an append-only audit trail of billable events with running
// totals. It lives for the process lifetime and is never persisted or
// reset. One instance is shared by all chats; callers receive an explicit
// handle from NewLedger rather than a package-level singleton.
type Ledger struct {
	mu          sync.Mutex
	rate        float64
	entries     []Entry
	totalRaw    float64
	totalUZS    float64
	totalTokens int
}

// NewLedger creates an empty ledger using the given USD to UZS rate.
// A non-positive rate falls back to DefaultExchangeRate.
func NewLedger(rate float64) *Ledger {
	if rate <= 0 {
		rate = DefaultExchangeRate
	}
	return &Ledger{rate: rate}
}

// Record appends a billable event and updates the running totals in one
// atomic step. The created entry is returned by value. rawCost is expected
// to be finite and non-negative; tokens may be zero for services billed by
// duration.
func (l *Ledger) Record(service string, rawCost float64, tokens int, note string) Entry {
	entry := Entry{
		Service:     service,
		RawCost:     rawCost,
		DisplayCost: rawCost * l.rate,
		Tokens:      tokens,
		Note:        note,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	l.totalRaw += entry.RawCost
	l.totalUZS += entry.DisplayCost
	l.totalTokens += entry.Tokens

	return entry
}

// Summarize renders a human-readable billing report: every entry in
// insertion order followed by the running totals. An empty ledger yields
// EmptyBalanceMessage instead of an empty list.
func (l *Ledger) Summarize() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return EmptyBalanceMessage
	}

	var b strings.Builder
	b.WriteString("Billing summary:\n")
	for i, e := range l.entries {
		fmt.Fprintf(&b, "%d. Model: %s. Raw %.4f$, UZS %.2f; Tokens: %d; %s\n",
			i+1, e.Service, e.RawCost, e.DisplayCost, e.Tokens, e.Note)
	}
	b.WriteString("────────────────────\n")
	fmt.Fprintf(&b, "Total raw: %.4f$\n", l.totalRaw)
	fmt.Fprintf(&b, "Total in UZS: %.2f UZS\n", l.totalUZS)
	fmt.Fprintf(&b, "Total tokens: %d", l.totalTokens)

	return b.String()
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of all recorded entries in insertion order.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Totals returns the running totals: raw USD cost, UZS cost and tokens.
func (l *Ledger) Totals() (raw, uzs float64, tokens int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalRaw, l.totalUZS, l.totalTokens
}
