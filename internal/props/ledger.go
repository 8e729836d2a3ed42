package props

import (
	"github.com/google/uuid"
)

// LedgerEntry records one config file read during a resolution run.
type LedgerEntry struct {
	Seq  int    `json:"seq"`
	Path string `json:"path"`
}

// Ledger is the set of config files already loaded in one resolution run.
// Each file is recorded once and receives the next sequence number, starting
// at 0. A Ledger belongs to exactly one run; create a new one per run.
type Ledger struct {
	RunID   uuid.UUID
	entries []LedgerEntry
	seen    map[string]int
}

// NewLedger returns an empty Ledger with a fresh run ID.
func NewLedger() *Ledger {
	return &Ledger{
		RunID: uuid.New(),
		seen:  map[string]int{},
	}
}

// Contains reports whether path has already been loaded in this run.
func (l *Ledger) Contains(path string) bool {
	_, ok := l.seen[path]
	return ok
}

// Record adds path and returns its sequence number. Recording a path a second
// time returns the original number and false.
func (l *Ledger) Record(path string) (int, bool) {
	if seq, ok := l.seen[path]; ok {
		return seq, false
	}
	seq := len(l.entries)
	l.entries = append(l.entries, LedgerEntry{Seq: seq, Path: path})
	l.seen[path] = seq
	return seq, true
}

// Entries returns the recorded files in load order.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded files.
func (l *Ledger) Len() int {
	return len(l.entries)
}
