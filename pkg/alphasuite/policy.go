package alphasuite

import "time"

// ReconnectPolicy decides how long to wait before reconnect attempt n
// (0-based). A false second return value means give up: the client stays
// Disconnected and stops retrying.
type ReconnectPolicy interface {
	Next(attempt int) (time.Duration, bool)
}

// FixedDelay retries forever with a constant delay between attempts.
// This is the default: the dashboard favors eventual recovery over giving up.
type FixedDelay time.Duration

func (d FixedDelay) Next(int) (time.Duration, bool) {
	return time.Duration(d), true
}

// CappedBackoff doubles the delay per attempt up to Max. With MaxAttempts > 0
// it terminates after that many attempts, otherwise it retries forever.
type CappedBackoff struct {
	Base        time.Duration
	Max         time.Duration
	MaxAttempts int
}

func (b CappedBackoff) Next(attempt int) (time.Duration, bool) {
	if b.MaxAttempts > 0 && attempt >= b.MaxAttempts {
		return 0, false
	}
	if attempt < 0 {
		return b.Base, true
	}
	// 2^31s already exceeds any reasonable Max; avoid shift overflow.
	if attempt > 30 {
		return b.Max, true
	}
	delay := b.Base * time.Duration(1<<attempt)
	if delay > b.Max {
		delay = b.Max
	}
	return delay, true
}
