// The pipeline drives a single pass over the input: parse each line, feed
// the record to every analyzer in a fixed order, and collect the line-level
// report material (blocked lines, server errors, missing resources).

package analyze

import (
	"bufio"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/logsight/logsight/analyze/telemetry"
)

// Config tunes the analyzers.
type Config struct {
	WindowHours float64       // busiest-window length in hours
	TopN        int           // report length for every top/bottom list
	Blocker     BlockerConfig // brute-force detector tuning
}

// DefaultConfig returns the production tuning: one-hour windows, top ten
// reports, default blocker.
func DefaultConfig() Config {
	return Config{WindowHours: 1, TopN: 10, Blocker: DefaultBlockerConfig()}
}

// Pipeline owns every analyzer and runs them over the input in order.
type Pipeline struct {
	cfg Config

	Hosts     *HostActivity
	Resources *ResourceUsage
	Windows   *BusyWindows
	Periods   *TimeOfDay
	Blocker   *Blocker

	blockedLines []string
	serverErrors []string
	notFound     map[string]struct{}
	notFoundList []string

	accepted uint64
	rejected uint64
	last     *Record
}

// NewPipeline builds a pipeline with fresh analyzer state.
func NewPipeline(cfg Config) *Pipeline {
	window := time.Duration(cfg.WindowHours * float64(time.Hour))
	return &Pipeline{
		cfg:       cfg,
		Hosts:     NewHostActivity(),
		Resources: NewResourceUsage(),
		Windows:   NewBusyWindows(window, cfg.TopN),
		Periods:   NewTimeOfDay(),
		Blocker:   NewBlocker(cfg.Blocker),
		notFound:  make(map[string]struct{}),
	}
}

// Run consumes the reader line by line until EOF. Malformed lines are
// warned about and skipped; a read error is returned to the caller and is
// fatal for the run.
func (p *Pipeline) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.Consume(scanner.Text())
	}
	return scanner.Err()
}

// Consume processes one input line. Each analyzer update is total, so a
// line either advances every analyzer or none.
func (p *Pipeline) Consume(line string) {
	rec, err := ParseLine(line)
	if err != nil {
		p.rejected++
		telemetry.IncRejected()
		logrus.Warnf("skipping entry %q: %v", line, err)
		return
	}
	p.accepted++
	telemetry.ObserveRecord(rec.Size)

	p.Hosts.Update(&rec)
	p.Resources.Update(&rec)
	p.Windows.Update(&rec)
	p.Periods.Update(&rec)

	if p.Blocker.Update(&rec) {
		p.blockedLines = append(p.blockedLines, rec.Raw)
		telemetry.IncBlocked()
	}

	if rec.Status == 404 {
		if _, seen := p.notFound[rec.Request]; !seen {
			p.notFound[rec.Request] = struct{}{}
			p.notFoundList = append(p.notFoundList, rec.Request)
		}
	}
	if rec.Status >= 500 && rec.Status < 600 {
		p.serverErrors = append(p.serverErrors, rec.Raw)
		telemetry.IncServerError()
	}

	p.last = &rec
}

// Finalize flushes the windows still in flight. Call exactly once after
// the last line.
func (p *Pipeline) Finalize() {
	p.Windows.Finalize(p.last)
}

// BlockedLines returns the raw lines flagged by the blocker, input order.
func (p *Pipeline) BlockedLines() []string { return p.blockedLines }

// ServerErrorLines returns the raw lines with a 5xx status, input order.
func (p *Pipeline) ServerErrorLines() []string { return p.serverErrors }

// NotFoundResources returns the distinct request paths that returned 404,
// first-seen order.
func (p *Pipeline) NotFoundResources() []string { return p.notFoundList }

// Accepted returns the number of successfully parsed records.
func (p *Pipeline) Accepted() uint64 { return p.accepted }

// Rejected returns the number of skipped input lines.
func (p *Pipeline) Rejected() uint64 { return p.rejected }
