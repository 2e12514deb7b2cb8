package space

import "fmt"

// InvalidIndex marks an unset row, column or line index
const InvalidIndex = -1

// ItemID identifies one logical grid item by row and column
type ItemID struct {
	Row    int
	Column int
}

// InvalidItem is the ItemID of nothing
var InvalidItem = ItemID{Row: InvalidIndex, Column: InvalidIndex}

// IsValid reports whether both indices are set
func (id ItemID) IsValid() bool {
	return id.Row != InvalidIndex && id.Column != InvalidIndex
}

func (id ItemID) String() string {
	return fmt.Sprintf("(%d,%d)", id.Row, id.Column)
}
