package host

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridkit/space"
)

// Model supplies the text of grid items
type Model interface {
	Text(item space.ItemID) string
}

// Flagger is implemented by models that mark some items with a badge
type Flagger interface {
	Flagged(item space.ItemID) bool
}

// Table is an in-memory model, row 0 is the header
type Table struct {
	cells [][]string
	cols  int
}

// NewTable creates a table from rows of cells, missing cells of ragged rows read as empty
func NewTable(rows [][]string) *Table {
	t := &Table{cells: rows}
	for _, r := range rows {
		t.cols = max(t.cols, len(r))
	}
	return t
}

// SampleTable generates rows x cols cells with a few long and negative values
func SampleTable(rows, cols int) *Table {
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
		for c := range cells[r] {
			switch {
			case r == 0:
				cells[r][c] = fmt.Sprintf("Column %c", 'A'+rune(c%26))
			case (r+c)%7 == 0:
				cells[r][c] = fmt.Sprintf("-%d.%02d", r*c, (r+c)%100)
			case (r*c)%5 == 3:
				cells[r][c] = fmt.Sprintf("long value at row %d column %d", r, c)
			default:
				cells[r][c] = strconv.Itoa(r*100 + c)
			}
		}
	}
	return NewTable(cells)
}

// LoadCSV reads a table from CSV, the first record becomes the header row
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: no records")
	}
	return NewTable(records), nil
}

// Rows returns the number of rows including the header
func (t *Table) Rows() int {
	return len(t.cells)
}

// Columns returns the width of the widest row
func (t *Table) Columns() int {
	return t.cols
}

func (t *Table) Text(item space.ItemID) string {
	if item.Row < 0 || item.Row >= len(t.cells) {
		return ""
	}
	row := t.cells[item.Row]
	if item.Column < 0 || item.Column >= len(row) {
		return ""
	}
	return row[item.Column]
}

// Flagged marks negative numbers outside the header
func (t *Table) Flagged(item space.ItemID) bool {
	if item.Row == 0 {
		return false
	}
	text := strings.TrimSpace(t.Text(item))
	v, err := strconv.ParseFloat(text, 64)
	return err == nil && v < 0
}
