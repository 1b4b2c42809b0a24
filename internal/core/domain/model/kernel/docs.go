// Package kernel provides core domain primitives and utilities for the grid
// storage system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Position: A value object locating a cell inside a storage grid, with cell naming
//   - Clock: The time source injected into state-changing operations
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
