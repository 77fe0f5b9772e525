package approval

import "errors"

// Failure kinds surfaced by approval guards. Match with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidThreshold = errors.New("invalid threshold")
	ErrInvalidTTL       = errors.New("invalid ttl")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrExpired          = errors.New("expired")
	ErrAlreadyFinalized = errors.New("already finalized")

	// ErrInvalidParticipant is the parent of the participant-level failures.
	ErrInvalidParticipant = errors.New("invalid participant")
	ErrNotAParticipant    = &participantError{msg: "not a participant"}
	ErrAlreadySigned      = &participantError{msg: "already signed"}
)

// participantError is a failure kind that also matches ErrInvalidParticipant.
type participantError struct {
	msg string
}

func (e *participantError) Error() string { return e.msg }

func (e *participantError) Is(target error) bool {
	return target == ErrInvalidParticipant
}
