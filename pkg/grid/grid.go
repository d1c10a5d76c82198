// Package grid converts between linear buffer indexes and 2D coordinates.
package grid

// GetGridCoords returns the column and row of index in a grid with cols
// columns.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// GetIndex is the inverse of GetGridCoords.
func GetIndex(x, y, cols int) int {
	return y*cols + x
}
