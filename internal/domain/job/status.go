package job

import "github.com/PerfectPlumbing/plumbing-ops/internal/httperr"

// ===============================
// Job Status
// ===============================

type Status string

const (
	StatusDraft      Status = "draft"
	StatusQuoted     Status = "quoted"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusInvoiced   Status = "invoiced"
	StatusArchived   Status = "archived"
)

// successor holds the single allowed next status for each state.
// StatusArchived has no entry: it is terminal.
var successor = map[Status]Status{
	StatusDraft:      StatusQuoted,
	StatusQuoted:     StatusConfirmed,
	StatusConfirmed:  StatusInProgress,
	StatusInProgress: StatusComplete,
	StatusComplete:   StatusInvoiced,
	StatusInvoiced:   StatusArchived,
}

func IsValid(s Status) bool {
	if s == StatusArchived {
		return true
	}
	_, ok := successor[s]
	return ok
}

// Next returns the designated successor, or false for terminal/unknown states.
func Next(s Status) (Status, bool) {
	next, ok := successor[s]
	return next, ok
}

// CanTransition permits only the move from a status to its single successor.
// No skips, no reverse transitions.
func CanTransition(from, to Status) error {
	next, ok := successor[from]
	if !ok || next != to {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusDraft
}
