package stats

import "go.uber.org/atomic"

// Ledger holds the live counters fed from the event stream.
type Ledger struct {
	height         atomic.Uint64
	totalProposals atomic.Uint64
	totalVotes     atomic.Uint64
	totalExecuted  atomic.Uint64
	totalEvents    atomic.Uint64
}

// SetHeight records the current ledger height.
func (l *Ledger) SetHeight(height uint64) {
	l.height.Store(height)
}

// Height returns the last recorded ledger height.
func (l *Ledger) Height() uint64 {
	return l.height.Load()
}

// IncTotalProposals increments the total of proposals created.
func (l *Ledger) IncTotalProposals() {
	l.totalProposals.Inc()
}

// TotalProposals returns the total of proposals created.
func (l *Ledger) TotalProposals() uint64 {
	return l.totalProposals.Load()
}

// IncTotalVotes increments the total of votes cast.
func (l *Ledger) IncTotalVotes() {
	l.totalVotes.Inc()
}

// TotalVotes returns the total of votes cast.
func (l *Ledger) TotalVotes() uint64 {
	return l.totalVotes.Load()
}

// IncTotalExecuted increments the total of proposals executed.
func (l *Ledger) IncTotalExecuted() {
	l.totalExecuted.Inc()
}

// TotalExecuted returns the total of proposals executed.
func (l *Ledger) TotalExecuted() uint64 {
	return l.totalExecuted.Load()
}

// IncTotalEvents increments the total of events seen on the bus.
func (l *Ledger) IncTotalEvents() {
	l.totalEvents.Inc()
}

// TotalEvents returns the total of events seen on the bus.
func (l *Ledger) TotalEvents() uint64 {
	return l.totalEvents.Load()
}
