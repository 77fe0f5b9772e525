// Package verification contains the pure business logic for integrity scoring.
// This is part of the Functional Core - no I/O, only pure functions.
package verification

import "math"

// Verification outcome values.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusPending = "pending"
)

// PerfectScore is the score of an empty or all-valid window.
const PerfectScore = 100

// Tally holds outcome counts over a verification window.
type Tally struct {
	Total   int
	Valid   int
	Invalid int
}

// Add counts a single outcome. Pending and unknown outcomes only increase Total.
func (t *Tally) Add(status string) {
	t.Total++
	switch status {
	case StatusValid:
		t.Valid++
	case StatusInvalid:
		t.Invalid++
	}
}

// TallyOf counts every outcome in statuses.
func TallyOf(statuses []string) Tally {
	var t Tally
	for _, s := range statuses {
		t.Add(s)
	}
	return t
}

// Score returns round(100 * valid / total), or PerfectScore for an empty tally.
// The result is always within [0, 100].
func Score(t Tally) int {
	if t.Total <= 0 {
		return PerfectScore
	}
	score := int(math.Round(float64(PerfectScore) * float64(t.Valid) / float64(t.Total)))
	if score < 0 {
		return 0
	}
	if score > PerfectScore {
		return PerfectScore
	}
	return score
}

// IsKnownStatus reports whether status is one of the defined outcomes.
func IsKnownStatus(status string) bool {
	switch status {
	case StatusValid, StatusInvalid, StatusPending:
		return true
	}
	return false
}
