package analyze

import "testing"

// mustLogTime parses a fixture timestamp or fails the test.
func mustLogTime(t *testing.T, s string) LogTime {
	t.Helper()
	lt, err := ParseLogTime(s)
	if err != nil {
		t.Fatalf("bad fixture timestamp %q: %v", s, err)
	}
	return lt
}

// loginRecord builds a failed or successful login-path record.
func loginRecord(t *testing.T, host, stamp string, status int) *Record {
	t.Helper()
	return &Record{
		Host:    host,
		Time:    mustLogTime(t, stamp),
		Method:  MethodPost,
		Request: "/login",
		Status:  status,
	}
}

// getRecord builds a plain GET record.
func getRecord(t *testing.T, host, stamp, path string, status int, size uint64) *Record {
	t.Helper()
	return &Record{
		Host:    host,
		Time:    mustLogTime(t, stamp),
		Method:  MethodGet,
		Request: path,
		Status:  status,
		Size:    size,
	}
}
