// Package assignment contains the Assignment aggregate: the pairing of one
// order with one delivery person, with its own status lifecycle. The
// assignment's status drives both linked entities: the order's status
// mirrors it and the delivery person's availability follows its activity.
package assignment
