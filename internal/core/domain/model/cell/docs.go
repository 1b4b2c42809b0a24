// Package cell provides the storage cell entity and its status state machine.
//
// The package includes:
//   - Cell: one addressable slot in a storage grid, tracking the single
//     in-progress order occupying it and the running product count
//   - Status: a state machine enforcing empty -> filling -> full -> empty
//
// Key business rules:
//   - An order can only be attached to an empty cell
//   - The product count never exceeds the order's declared target
//   - Reaching the target moves the cell to full and stamps the filled time
//   - Manual overrides may switch a cell between filling and full, but the
//     only way back to empty is the destructive, audited clear operation
package cell
