package session

import "time"

// Record is the server-side state of one browser session.
type Record struct {
	Values    map[string]string `json:"values,omitempty"`
	Known     bool              `json:"known"`
	StartedAt *time.Time        `json:"started_at,omitempty"`
	Flashes   []string          `json:"flashes,omitempty"`
}

// Value returns the last submitted value of field.
func (r *Record) Value(field string) (string, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// SetValues overwrites the stored fields with values. Fields missing from
// values keep their previous content.
func (r *Record) SetValues(values map[string]string) {
	if r.Values == nil {
		r.Values = make(map[string]string, len(values))
	}
	for k, v := range values {
		r.Values[k] = v
	}
}

// Touch records now as the first visit unless one is already set.
// It reports whether the record changed.
func (r *Record) Touch(now time.Time) bool {
	if r.StartedAt != nil {
		return false
	}
	started := now.UTC()
	r.StartedAt = &started
	return true
}

// Elapsed is the time since the first visit, never negative.
func (r *Record) Elapsed(now time.Time) time.Duration {
	if r.StartedAt == nil {
		return 0
	}
	d := now.Sub(*r.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// AddFlash queues a message for the next rendered page.
func (r *Record) AddFlash(msg string) {
	r.Flashes = append(r.Flashes, msg)
}

// PopFlashes returns the queued messages and clears the queue.
func (r *Record) PopFlashes() []string {
	flashes := r.Flashes
	r.Flashes = nil
	return flashes
}
