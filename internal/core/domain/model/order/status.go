package order

import (
	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	UnAssigned ──> Assigned ──> OutForDelivery ──> Delivered
//	     ^             │               │
//	     └─────────────┴───────┐       │
//	     (assignment released) │       │
//	                           v       v
//	  any non-terminal ──> Cancelled
//
// UnAssigned→Assigned happens only as a side effect of assignment creation;
// the release back to UnAssigned only when the active assignment is
// cancelled or deleted. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// UnAssigned is the initial status of a freshly created order.
	// Orders in this status are waiting to be paired with a delivery person.
	UnAssigned

	// Assigned indicates the order has an active assignment in Pending or
	// InProgress state.
	Assigned

	// OutForDelivery mirrors the assignment being out for delivery.
	OutForDelivery

	// Delivered indicates the order has been delivered. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled, either directly by an
	// operator or through its assignment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		UnAssigned:     "UnAssigned",
		Assigned:       "Assigned",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		UnAssigned:     "UnAssigned",
		Assigned:       "Assigned",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// transitions is the authoritative transition table. A status maps to the
// set of statuses it may move to; terminal statuses map to nothing.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		UnAssigned:     {Assigned, Cancelled},
		Assigned:       {OutForDelivery, Delivered, Cancelled, UnAssigned},
		OutForDelivery: {Delivered, Cancelled, UnAssigned},
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
	return Unknown, errs.NewValueIsInvalidError("order status " + s)
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
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
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
