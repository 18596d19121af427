package core

import "time"

// RateCounter measures completed generations per second over one-second
// windows, like a frame counter.
type RateCounter struct {
	windowStart time.Time
	count       int
	rate        float64
	total       int
	now         func() time.Time
}

// NewRateCounter returns a counter using the wall clock.
func NewRateCounter() *RateCounter {
	return &RateCounter{now: time.Now}
}

// Add records n completed generations and reports whether a window closed.
func (r *RateCounter) Add(n int) bool {
	now := r.now()
	if r.windowStart.IsZero() {
		r.windowStart = now
	}
	r.count += n
	r.total += n
	elapsed := now.Sub(r.windowStart)
	if elapsed < time.Second {
		return false
	}
	r.rate = float64(r.count) / elapsed.Seconds()
	r.count = 0
	r.windowStart = now
	return true
}

// Rate returns the generations per second measured over the last closed window.
func (r *RateCounter) Rate() float64 { return r.rate }

// Total returns every generation recorded since construction.
func (r *RateCounter) Total() int { return r.total }
