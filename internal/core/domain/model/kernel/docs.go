// Package kernel contains the shared building blocks of the domain model.
// It holds value objects that every aggregate depends on, currently the UUID
// identifier type. Kernel types are immutable and safe for concurrent use.
package kernel
