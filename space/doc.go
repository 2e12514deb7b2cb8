// Package space holds the grid's logical coordinate system: cell-space geometry,
// item identity and the line-size collections that back columns and rows.
//
// Rect follows the inclusive-edge convention used by the pointer code:
// Right() and Bottom() name the last cell inside the rectangle, so the trailing
// edge of a column of width w starting at x is x+w-1.
package space
