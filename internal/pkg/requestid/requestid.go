// Package requestid issues ids for in-flight requests so that only the
// most recent one is acted on
package requestid

import "sync/atomic"

// Tracker issues monotonically increasing request ids. The zero value is
// ready to use and no id it issues is 0.
type Tracker struct {
	latest atomic.Uint64
}

// New returns a tracker with no request issued yet
func New() *Tracker {
	return &Tracker{}
}

// Next issues a new id, superseding every id issued before it
func (t *Tracker) Next() uint64 {
	return t.latest.Add(1)
}

// Current returns the last issued id, 0 when none has been issued
func (t *Tracker) Current() uint64 {
	return t.latest.Load()
}

// IsCurrent reports whether id is the latest issued id
func (t *Tracker) IsCurrent(id uint64) bool {
	return id != 0 && id == t.latest.Load()
}
