// Serializes the pipeline's results into the per-feature plaintext
// reports. A failed report is logged and skipped; the others are still
// written.

package analyze

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ReportPaths names the output file for every report.
type ReportPaths struct {
	Hosts          string
	Resources      string
	Hours          string
	HoursNoOverlap string
	Blocked        string
	MostRequested  string
	LeastRequested string
	ServerError    string
	NotFound       string
	DailyHits      string
	DailyHosts     string
	HourlyHits     string
	HourlyHosts    string
}

// DefaultReportPaths lays the reports out under dir with their
// conventional names.
func DefaultReportPaths(dir string) ReportPaths {
	join := func(name string) string { return filepath.Join(dir, name) }
	return ReportPaths{
		Hosts:          join("hosts.txt"),
		Resources:      join("resources.txt"),
		Hours:          join("hours.txt"),
		HoursNoOverlap: join("hours_no_overlap.txt"),
		Blocked:        join("blocked.txt"),
		MostRequested:  join("resources_most_requested.txt"),
		LeastRequested: join("resources_least_requested.txt"),
		ServerError:    join("server_error.txt"),
		NotFound:       join("resources_not_found.txt"),
		DailyHits:      join("daily_hits.txt"),
		DailyHosts:     join("daily_hosts.txt"),
		HourlyHits:     join("hourly_hits.txt"),
		HourlyHosts:    join("hourly_hosts.txt"),
	}
}

// WriteReports writes every report. Failures are logged per file and do
// not stop the remaining reports.
func (p *Pipeline) WriteReports(paths ReportPaths) {
	n := p.cfg.TopN

	writeReport(paths.Hosts, keyCountLines(p.Hosts.Top(n, HostCount)))
	writeReport(paths.Resources, keysOnly(p.Resources.Top(n, ResourceBandwidth)))
	writeReport(paths.Hours, windowLines(p.Windows.Top()))
	writeReport(paths.HoursNoOverlap, windowLines(p.Windows.TopNoOverlap()))
	writeReport(paths.Blocked, p.BlockedLines())
	writeReport(paths.MostRequested, floatCountLines(p.Resources.Top(n, ResourceCount)))
	writeReport(paths.LeastRequested, floatCountLines(p.Resources.Bottom(n, ResourceCount)))
	writeReport(paths.ServerError, p.ServerErrorLines())
	writeReport(paths.NotFound, p.NotFoundResources())
	writeReport(paths.DailyHits, countKeyLines(p.Periods.DailyHits()))
	writeReport(paths.DailyHosts, countKeyLines(p.Periods.DailyHosts()))
	writeReport(paths.HourlyHits, countKeyLines(p.Periods.HourlyHits()))
	writeReport(paths.HourlyHosts, countKeyLines(p.Periods.HourlyHosts()))
}

// keyCountLines renders "key,count".
func keyCountLines(entries []Entry[uint64]) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key + "," + strconv.FormatUint(e.Value, 10)
	}
	return lines
}

// countKeyLines renders "count,key".
func countKeyLines(entries []Entry[uint64]) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = strconv.FormatUint(e.Value, 10) + "," + e.Key
	}
	return lines
}

// floatCountLines renders "key,value" with integral values printed bare.
func floatCountLines(entries []Entry[float64]) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key + "," + strconv.FormatFloat(e.Value, 'f', -1, 64)
	}
	return lines
}

// keysOnly renders just the ranked keys.
func keysOnly(entries []Entry[float64]) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key
	}
	return lines
}

// windowLines renders "start,count".
func windowLines(windows []WindowCount) []string {
	lines := make([]string, len(windows))
	for i, w := range windows {
		lines[i] = w.Start + "," + strconv.Itoa(w.Count)
	}
	return lines
}

// writeReport writes one line-per-entry plaintext file.
func writeReport(path string, lines []string) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		logrus.Infof("skipping report %s: %v", path, err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Infof("closing report %s: %v", path, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			logrus.Infof("writing report %s: %v", path, err)
			return
		}
	}
	if err := writer.Flush(); err != nil {
		logrus.Infof("flushing report %s: %v", path, err)
	}
}
