// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements the workflows that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentPlanner: pairs an unassigned order with an available courier
//   - AvailabilityPolicy: recomputes courier availability from active work
package services
