// Per-host brute-force login detection. Three failed logins to /login
// within the watch interval put the host in a blocked state; every record
// from a blocked host is flagged until the block budget runs out.

package analyze

// BlockerConfig tunes the detector.
type BlockerConfig struct {
	WatchSeconds int64 // budget for the failed-login streak
	BlockSeconds int64 // budget for the blocked state
	Chances      int   // failed logins that trigger a block
}

// DefaultBlockerConfig returns the production tuning: three failures in 20
// seconds block the host for 300 seconds.
func DefaultBlockerConfig() BlockerConfig {
	return BlockerConfig{WatchSeconds: 20, BlockSeconds: 300, Chances: 3}
}

type hostState int

const (
	stateWatching hostState = iota
	stateBlocked
)

// hostEntry is the per-host detector state. A host has at most one entry;
// absence means the host is unknown. chancesLeft is meaningful only while
// watching.
type hostEntry struct {
	state       hostState
	lastTime    LogTime
	timeLeft    int64
	chancesLeft int
}

// Blocker is the per-host state machine. Timers decrement on consumption:
// each update subtracts the elapsed seconds since the entry's last record
// from its remaining budget rather than tracking deadlines.
type Blocker struct {
	cfg   BlockerConfig
	hosts map[string]hostEntry
}

// NewBlocker builds a detector with the given tuning.
func NewBlocker(cfg BlockerConfig) *Blocker {
	return &Blocker{cfg: cfg, hosts: make(map[string]hostEntry)}
}

// failedLogin reports whether rec is a failed login attempt.
func failedLogin(rec *Record) bool {
	return rec.Request == "/login" && rec.Status == 401
}

// Update advances the host's state machine with rec and reports whether
// the record is blocked. Only records arriving while the host is already
// blocked are flagged; the failure that triggers the block is not.
func (b *Blocker) Update(rec *Record) bool {
	entry, known := b.hosts[rec.Host]

	if known && entry.state == stateBlocked {
		delta := SecondsBetween(entry.lastTime, rec.Time)
		if delta <= entry.timeLeft {
			entry.lastTime = rec.Time
			entry.timeLeft -= delta
			b.hosts[rec.Host] = entry
			return true
		}
		// Block expired. The current record passes through and is not
		// reconsidered as a login attempt.
		delete(b.hosts, rec.Host)
		return false
	}

	if failedLogin(rec) {
		if !known {
			b.hosts[rec.Host] = hostEntry{
				state:       stateWatching,
				lastTime:    rec.Time,
				timeLeft:    b.cfg.WatchSeconds,
				chancesLeft: b.cfg.Chances - 1,
			}
			return false
		}
		delta := SecondsBetween(entry.lastTime, rec.Time)
		if delta > entry.timeLeft {
			// Watch window expired before the streak completed.
			delete(b.hosts, rec.Host)
			return false
		}
		if entry.chancesLeft == 1 {
			b.hosts[rec.Host] = hostEntry{
				state:    stateBlocked,
				lastTime: rec.Time,
				timeLeft: b.cfg.BlockSeconds,
			}
			return false
		}
		entry.lastTime = rec.Time
		entry.timeLeft -= delta
		entry.chancesLeft--
		b.hosts[rec.Host] = entry
		return false
	}

	// Any success or non-login request ends a failed-login streak.
	if known {
		delete(b.hosts, rec.Host)
	}
	return false
}
