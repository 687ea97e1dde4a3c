package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestDisabledIsNoOp verifies the hot-path fast exit: with the module off,
// the records counter does not move.
func TestDisabledIsNoOp(t *testing.T) {
	t.Cleanup(func() { Enable(Config{Enabled: false}) })
	Enable(Config{Enabled: false})

	before := testutil.ToFloat64(recordsTotal)
	ObserveRecord(100)
	IncRejected()
	IncBlocked()
	IncServerError()
	if delta := testutil.ToFloat64(recordsTotal) - before; delta != 0 {
		t.Fatalf("recordsTotal delta = %v, want 0 while disabled", delta)
	}
}

func TestEnabledCounters(t *testing.T) {
	t.Cleanup(func() { Enable(Config{Enabled: false}) })
	Enable(Config{Enabled: true})

	beforeRecords := testutil.ToFloat64(recordsTotal)
	beforeRejected := testutil.ToFloat64(rejectedTotal)
	beforeBlocked := testutil.ToFloat64(blockedTotal)
	beforeErrors := testutil.ToFloat64(serverErrorsTotal)

	ObserveRecord(100)
	ObserveRecord(2048)
	IncRejected()
	IncBlocked()
	IncServerError()

	if delta := testutil.ToFloat64(recordsTotal) - beforeRecords; delta != 2 {
		t.Fatalf("recordsTotal delta = %v, want 2", delta)
	}
	if delta := testutil.ToFloat64(rejectedTotal) - beforeRejected; delta != 1 {
		t.Fatalf("rejectedTotal delta = %v, want 1", delta)
	}
	if delta := testutil.ToFloat64(blockedTotal) - beforeBlocked; delta != 1 {
		t.Fatalf("blockedTotal delta = %v, want 1", delta)
	}
	if delta := testutil.ToFloat64(serverErrorsTotal) - beforeErrors; delta != 1 {
		t.Fatalf("serverErrorsTotal delta = %v, want 1", delta)
	}
}
