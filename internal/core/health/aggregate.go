// Package health contains the pure business logic for folding per-ledger
// status snapshots into one overall health level.
// This is part of the Functional Core - no I/O, only pure functions.
package health

import "errors"

// Ledger status values reported by the status oracle.
const (
	StatusHealthy = "healthy"
	StatusWarning = "warning"
	StatusError   = "error"
)

// Alert levels.
const (
	LevelInfo     = "info"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)

// ErrDependencyUnavailable marks a status oracle fault or timeout for a single ledger.
var ErrDependencyUnavailable = errors.New("dependency unavailable")

// Rank orders statuses by severity: healthy < warning < error.
// Unknown statuses rank as warning so an unexpected oracle answer is never read as healthy.
func Rank(status string) int {
	switch status {
	case StatusHealthy:
		return 0
	case StatusError:
		return 2
	default:
		return 1
	}
}

// Worse returns whichever of a and b has the higher rank. Ties keep a.
func Worse(a, b string) string {
	if Rank(b) > Rank(a) {
		return b
	}
	return a
}

// Overall folds statuses with the priority rule error > warning > healthy.
// An empty input is healthy.
func Overall(statuses []string) string {
	overall := StatusHealthy
	for _, s := range statuses {
		overall = Worse(overall, Normalize(s))
	}
	return overall
}

// IsDegraded reports whether a status should produce an alert.
func IsDegraded(status string) bool {
	return Rank(status) > 0
}

// AlertLevelFor maps a degraded status to the level of the alert it raises.
// Returns "" for a healthy status.
func AlertLevelFor(status string) string {
	switch Rank(status) {
	case 0:
		return ""
	case 2:
		return LevelCritical
	default:
		return LevelWarning
	}
}

// Normalize maps any status onto healthy, warning or error by rank.
func Normalize(status string) string {
	switch Rank(status) {
	case 0:
		return StatusHealthy
	case 2:
		return StatusError
	default:
		return StatusWarning
	}
}
