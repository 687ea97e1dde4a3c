// Daily and hourly traffic counters: hits plus the set of distinct hosts,
// keyed by calendar day and by hour of day.

package analyze

import "fmt"

type periodStats struct {
	hits  uint64
	hosts map[string]struct{}
}

// TimeOfDay tracks hits and unique hosts per day and per hour of day.
// Report order is first-seen order, which is chronological for
// time-ordered input.
type TimeOfDay struct {
	dayOrder  []string
	days      map[string]*periodStats
	hourOrder []int
	hours     map[int]*periodStats
}

// NewTimeOfDay builds empty counters.
func NewTimeOfDay() *TimeOfDay {
	return &TimeOfDay{
		days:  make(map[string]*periodStats),
		hours: make(map[int]*periodStats),
	}
}

// Update counts rec once for its day and once for its hour of day.
func (t *TimeOfDay) Update(rec *Record) {
	day := rec.Time.Date()
	stats, ok := t.days[day]
	if !ok {
		stats = &periodStats{hosts: make(map[string]struct{})}
		t.days[day] = stats
		t.dayOrder = append(t.dayOrder, day)
	}
	stats.hits++
	stats.hosts[rec.Host] = struct{}{}

	hour := rec.Time.Hour()
	stats, ok = t.hours[hour]
	if !ok {
		stats = &periodStats{hosts: make(map[string]struct{})}
		t.hours[hour] = stats
		t.hourOrder = append(t.hourOrder, hour)
	}
	stats.hits++
	stats.hosts[rec.Host] = struct{}{}
}

// DailyHits returns (hits, day) per observed day.
func (t *TimeOfDay) DailyHits() []Entry[uint64] {
	out := make([]Entry[uint64], 0, len(t.dayOrder))
	for _, day := range t.dayOrder {
		out = append(out, Entry[uint64]{Key: day, Value: t.days[day].hits})
	}
	return out
}

// DailyHosts returns (distinct hosts, day) per observed day.
func (t *TimeOfDay) DailyHosts() []Entry[uint64] {
	out := make([]Entry[uint64], 0, len(t.dayOrder))
	for _, day := range t.dayOrder {
		out = append(out, Entry[uint64]{Key: day, Value: uint64(len(t.days[day].hosts))})
	}
	return out
}

// HourlyHits returns (hits, HH:00:00) per observed hour of day.
func (t *TimeOfDay) HourlyHits() []Entry[uint64] {
	out := make([]Entry[uint64], 0, len(t.hourOrder))
	for _, hour := range t.hourOrder {
		out = append(out, Entry[uint64]{Key: hourLabel(hour), Value: t.hours[hour].hits})
	}
	return out
}

// HourlyHosts returns (distinct hosts, HH:00:00) per observed hour of day.
func (t *TimeOfDay) HourlyHosts() []Entry[uint64] {
	out := make([]Entry[uint64], 0, len(t.hourOrder))
	for _, hour := range t.hourOrder {
		out = append(out, Entry[uint64]{Key: hourLabel(hour), Value: uint64(len(t.hours[hour].hosts))})
	}
	return out
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour)
}
