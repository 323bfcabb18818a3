package assignment

import (
	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
//
// State transitions:
//
//	Pending ──> InProgress ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   ├────────────┘───────────────┤
//	   │     (skip ahead allowed)   │
//	   v                            v
//	            Cancelled
//
// Pending may skip directly to OutForDelivery or even Delivered; every
// non-terminal status may cancel. Delivered and Cancelled are terminal.
// The console only offers a subset of these edges in its dialogs; the
// coordinator accepts the full table from any caller.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created assignment.
	Pending

	// InProgress indicates the courier has started working the assignment.
	InProgress

	// OutForDelivery indicates the courier is en route to the client.
	OutForDelivery

	// Delivered indicates the delivery completed. Terminal.
	Delivered

	// Cancelled indicates the assignment was abandoned. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		InProgress:     "InProgress",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		InProgress:     "InProgress",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// transitions is the authoritative transition table.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {InProgress, OutForDelivery, Delivered, Cancelled},
		InProgress:     {OutForDelivery, Delivered, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses the textual status used on the wire and in
// storage queries. Returns a ValueIsInvalidError for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("assignment status " + s)
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("assignment status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the assignment still occupies its courier.
// Active means neither Delivered nor Cancelled.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// CanTransitionTo reports whether the machine permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo applies the transition table, returning the new status or an
// InvalidTransitionError.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("assignment", s.String(), next.String())
	}
	return next, nil
}
