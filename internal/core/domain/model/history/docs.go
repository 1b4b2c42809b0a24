// Package history provides the append-only audit ledger of cell mutations.
//
// Every operation on a cell writes a Record: products landing, status
// transitions, note updates, and destructive clears. Records carry typed
// before/after snapshots per action kind and are never updated or deleted
// after insertion.
package history
