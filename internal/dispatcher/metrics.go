package dispatcher

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dshills/textpad/internal/dispatcher/handler"
)

// Metrics counts dispatches per command.
type Metrics struct {
	mu sync.Mutex

	commands map[CommandID]*CommandStats
	panics   uint64
}

// CommandStats holds the counters of one command.
type CommandStats struct {
	Command  CommandID
	Count    uint64
	Errors   uint64
	Total    time.Duration
	Slowest  time.Duration
	LastSeen handler.ResultStatus
}

// Average returns the mean dispatch time.
func (s CommandStats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// String formats the stats for a log line.
func (s CommandStats) String() string {
	return fmt.Sprintf("%s x%d (errors %d, avg %s, max %s)", s.Command, s.Count, s.Errors, s.Average(), s.Slowest)
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[CommandID]*CommandStats)}
}

func (m *Metrics) record(id CommandID, d time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.commands[id]
	if s == nil {
		s = &CommandStats{Command: id}
		m.commands[id] = s
	}
	s.Count++
	s.Total += d
	s.Slowest = max(s.Slowest, d)
	s.LastSeen = status
	if status == handler.StatusError {
		s.Errors++
	}
}

func (m *Metrics) recordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics++
}

// Totals returns the number of dispatches, error results and recovered
// panics.
func (m *Metrics) Totals() (dispatches, errors, panics uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.commands {
		dispatches += s.Count
		errors += s.Errors
	}
	return dispatches, errors, m.panics
}

// Stats returns the counters of id.
func (m *Metrics) Stats(id CommandID) (CommandStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.commands[id]
	if !ok {
		return CommandStats{}, false
	}
	return *s, true
}

// Top returns up to n commands, most dispatched first.
func (m *Metrics) Top(n int) []CommandStats {
	m.mu.Lock()
	all := make([]CommandStats, 0, len(m.commands))
	for _, s := range m.commands {
		all = append(all, *s)
	}
	m.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Command < all[j].Command
	})
	return all[:min(n, len(all))]
}
