// Package tracking provides the order tracker aggregate.
//
// A tracker follows one order across scans: how many products were
// declared, how many arrived, and which cell holds them. Shipped is the
// terminal state; recurring order keys get a fresh tracker row instead of
// reopening a shipped one.
package tracking
