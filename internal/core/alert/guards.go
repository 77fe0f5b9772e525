// Package alert contains the pure business logic for alert operations.
// Guards are pure functions that evaluate preconditions without side effects.
package alert

import "fmt"

// AcknowledgeContext provides context for alert acknowledgement guards.
type AcknowledgeContext struct {
	AlertID      string
	Exists       bool
	Acknowledged bool
}

// CanAcknowledge reports whether an alert can move to acknowledged.
// Rules:
// - Alert must exist
// - Alert must not already be acknowledged (one-way)
func CanAcknowledge(ctx AcknowledgeContext) bool {
	return ctx.Exists && !ctx.Acknowledged
}

// IsKnownLevel reports whether level is info, warning or critical.
func IsKnownLevel(level string) bool {
	switch level {
	case "info", "warning", "critical":
		return true
	}
	return false
}

// GenerateAlertID generates an alert ID from the current max number.
// The format is ALERT-XXXX where XXXX is a zero-padded 4-digit number.
func GenerateAlertID(currentMax int) string {
	return fmt.Sprintf("ALERT-%04d", currentMax+1)
}
