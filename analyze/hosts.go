// Per-host activity counters: request count and total bytes served.

package analyze

// HostAxis selects the ranking feature for host reports.
type HostAxis int

const (
	HostCount HostAxis = iota // total requests from the host
	HostSize                  // total bytes served to the host
)

// HostStats accumulates one host's activity.
type HostStats struct {
	Count uint64
	Bytes uint64
}

// HostActivity counts requests and bytes per host.
type HostActivity struct {
	hosts map[string]HostStats
}

// NewHostActivity builds an empty counter set.
func NewHostActivity() *HostActivity {
	return &HostActivity{hosts: make(map[string]HostStats)}
}

// Update folds one record into the host's counters.
func (h *HostActivity) Update(rec *Record) {
	stats := h.hosts[rec.Host]
	stats.Count++
	stats.Bytes += rec.Size
	h.hosts[rec.Host] = stats
}

// Get returns one host's value on the given axis; zero for unknown hosts.
func (h *HostActivity) Get(host string, axis HostAxis) uint64 {
	return hostValue(h.hosts[host], axis)
}

// Top returns the n greatest hosts on the given axis, value descending.
// Panics on an unknown axis once any host has been counted; that is a
// programming error, not input.
func (h *HostActivity) Top(n int, axis HostAxis) []Entry[uint64] {
	return TopNBy(n, h.project(axis))
}

func (h *HostActivity) project(axis HostAxis) map[string]uint64 {
	out := make(map[string]uint64, len(h.hosts))
	for host, stats := range h.hosts {
		out[host] = hostValue(stats, axis)
	}
	return out
}

func hostValue(stats HostStats, axis HostAxis) uint64 {
	switch axis {
	case HostCount:
		return stats.Count
	case HostSize:
		return stats.Bytes
	default:
		panic("hosts: unknown axis")
	}
}
