// Package order contains the Order aggregate and its status state machine.
// An order is a client delivery request that moves from UnAssigned through
// Assigned and OutForDelivery to a terminal Delivered or Cancelled state.
// Every status change outside operator cancellation is driven by the
// lifecycle of the order's assignment.
package order
