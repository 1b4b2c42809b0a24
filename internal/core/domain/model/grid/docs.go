// Package grid provides the storage grid aggregate.
//
// A grid is a named rectangular layout of cells. The grid owns cell
// generation and resizing: cells are created row by row so the insertion
// order matches the walking order used when picking the first free cell.
// Shrinking a grid is refused while any removed cell still holds products.
package grid
