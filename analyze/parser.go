// Parses Apache Common Log Format lines into Records.
//
// host ident user [DD/Mon/YYYY:HH:MM:SS ±ZZZZ] "METHOD path PROTO" status size

package analyze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clfPattern = regexp.MustCompile(
	`^(?P<host>\S+)` + // host %h
		`\s+\S+` + // ident %l (unused)
		`\s+(?P<user>\S+)` + // user %u
		`\s+\[(?P<time>[^\]]+)\]` + // time %t
		`\s+"(?P<request>[^"]*)"` + // request "%r"
		`\s+(?P<status>\d+|-)` + // status %>s, can be '-'
		`\s+(?P<size>\S+)\s*$`) // size %b, can be '-'

var clfGroups = clfPattern.SubexpNames()

// ParseLine parses one log line into a Record. Lines that do not match the
// format, or whose request method is not GET/POST/HEAD, return an error and
// must be skipped by the caller.
func ParseLine(line string) (Record, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	m := clfPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Record{}, fmt.Errorf("line does not match common log format")
	}
	fields := make(map[string]string, len(clfGroups))
	for i, name := range clfGroups {
		if name != "" {
			fields[name] = m[i]
		}
	}

	rec := Record{Host: fields["host"], Raw: trimmed}

	if fields["user"] != "-" {
		rec.User = fields["user"]
	}

	t, err := ParseLogTime(fields["time"])
	if err != nil {
		return Record{}, err
	}
	rec.Time = t

	method, path, err := splitRequest(fields["request"])
	if err != nil {
		return Record{}, err
	}
	rec.Method = method
	rec.Request = path

	if s := fields["status"]; s != "-" {
		status, err := strconv.Atoi(s)
		if err != nil {
			return Record{}, fmt.Errorf("bad status %q: %w", s, err)
		}
		rec.Status = status
	}

	if s := fields["size"]; s != "-" {
		size, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("bad size %q: %w", s, err)
		}
		rec.Size = size
	}

	return rec, nil
}

// splitRequest breaks the quoted request field into method and path. The
// trailing protocol token is dropped.
func splitRequest(request string) (Method, string, error) {
	parts := strings.Fields(request)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("bad request field %q", request)
	}
	switch m := Method(parts[0]); m {
	case MethodGet, MethodPost, MethodHead:
		return m, parts[1], nil
	default:
		return "", "", fmt.Errorf("unsupported method %q", parts[0])
	}
}
