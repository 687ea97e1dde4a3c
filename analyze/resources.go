// Per-resource counters: request count, running mean response size, and
// total bandwidth. The bare site root "/" is excluded.

package analyze

// ResourceAxis selects the ranking feature for resource reports.
type ResourceAxis int

const (
	ResourceCount     ResourceAxis = iota // number of requests
	ResourceSize                          // mean bytes per request
	ResourceBandwidth                     // total bytes
)

// ResourceStats accumulates one resource's usage.
type ResourceStats struct {
	Count    uint64
	MeanSize float64
	Bytes    uint64
}

// ResourceUsage counts requests, mean size, and bandwidth per resource path.
type ResourceUsage struct {
	resources map[string]ResourceStats
}

// NewResourceUsage builds an empty counter set.
func NewResourceUsage() *ResourceUsage {
	return &ResourceUsage{resources: make(map[string]ResourceStats)}
}

// Update folds one record into its resource's counters. Requests for "/"
// are ignored.
func (r *ResourceUsage) Update(rec *Record) {
	if rec.Request == "/" {
		return
	}
	stats := r.resources[rec.Request]
	stats.Count++
	stats.Bytes += rec.Size
	stats.MeanSize = float64(stats.Bytes) / float64(stats.Count)
	r.resources[rec.Request] = stats
}

// Get returns one resource's value on the given axis; zero when unknown.
func (r *ResourceUsage) Get(resource string, axis ResourceAxis) float64 {
	return resourceValue(r.resources[resource], axis)
}

// Top returns the n greatest resources on the given axis, value descending.
func (r *ResourceUsage) Top(n int, axis ResourceAxis) []Entry[float64] {
	return TopNBy(n, r.project(axis))
}

// Bottom returns the n smallest resources on the given axis, value
// ascending with ties broken by key ascending.
func (r *ResourceUsage) Bottom(n int, axis ResourceAxis) []Entry[float64] {
	return BottomNBy(n, r.project(axis))
}

func (r *ResourceUsage) project(axis ResourceAxis) map[string]float64 {
	out := make(map[string]float64, len(r.resources))
	for resource, stats := range r.resources {
		out[resource] = resourceValue(stats, axis)
	}
	return out
}

func resourceValue(stats ResourceStats, axis ResourceAxis) float64 {
	switch axis {
	case ResourceCount:
		return float64(stats.Count)
	case ResourceSize:
		return stats.MeanSize
	case ResourceBandwidth:
		return float64(stats.Bytes)
	default:
		panic("resources: unknown axis")
	}
}
