package link

import (
	"time"
)

// Party identifies which side of a link is acting.
type Party string

const (
	PartyPatient      Party = "patient"
	PartyPsychologist Party = "psychologist"
)

// Status mirrors the persisted link status.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Snapshot is the current persisted state of a patient-psychologist pair,
// as seen by the state machine. Exists is false when no row exists.
type Snapshot struct {
	Exists      bool
	Status      Status
	RequestedBy Party
	RespondedAt *time.Time
}

// RequestDecision is the outcome of a link request against a snapshot.
type RequestDecision int

const (
	// DecisionCreate creates a fresh pending row.
	DecisionCreate RequestDecision = iota
	// DecisionAutoAccept flips the existing opposite-side pending row to
	// accepted; no new row.
	DecisionAutoAccept
	// DecisionReplaceRejected deletes the stale rejected row and creates
	// a fresh pending one.
	DecisionReplaceRejected
)

// DecideRequest evaluates a link request from `by` against the pair's
// current state. It is pure: all persistence happens in the caller.
func DecideRequest(s Snapshot, by Party, now time.Time, cooldown time.Duration) (RequestDecision, error) {
	if !s.Exists {
		return DecisionCreate, nil
	}

	switch s.Status {
	case StatusAccepted:
		return 0, ErrAlreadyLinked

	case StatusPending:
		if s.RequestedBy == by {
			return 0, ErrAlreadyRequested
		}
		// The other side already asked; a request from this side is
		// mutual consent.
		return DecisionAutoAccept, nil

	case StatusRejected:
		if s.RespondedAt != nil {
			elapsed := now.Sub(*s.RespondedAt)
			if elapsed < cooldown {
				return 0, &CooldownError{Remaining: cooldown - elapsed}
			}
		}
		return DecisionReplaceRejected, nil
	}

	return 0, ErrInvalidState
}

// DecideRespond validates that `by` may answer the pending request.
// Only the party that did not initiate may respond.
func DecideRespond(s Snapshot, by Party) error {
	if !s.Exists {
		return ErrLinkNotFound
	}
	if s.Status != StatusPending {
		return ErrNotPending
	}
	if s.RequestedBy == by {
		return ErrSelfResponse
	}
	return nil
}
