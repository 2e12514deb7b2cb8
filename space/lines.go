package space

import "fmt"

// LineListener is notified after a line changes size
type LineListener func(index, size int)

// Lines is an ordered collection of line sizes (column widths or row heights)
// indexed by logical position. Offsets are relative to the first line.
type Lines struct {
	sizes     []int
	listeners []LineListener
}

// NewLines creates count lines of the given size
func NewLines(count, size int) *Lines {
	if count < 0 {
		count = 0
	}
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = size
	}
	return &Lines{sizes: sizes}
}

// NewLinesFromSizes creates lines with explicit sizes, the slice is copied
func NewLinesFromSizes(sizes []int) *Lines {
	return &Lines{sizes: append([]int(nil), sizes...)}
}

// Count returns the number of lines
func (l *Lines) Count() int {
	return len(l.sizes)
}

// LineSize returns the size of line index
func (l *Lines) LineSize(index int) int {
	l.mustContain(index)
	return l.sizes[index]
}

// SetLineSize changes the size of line index and notifies listeners
func (l *Lines) SetLineSize(index, size int) {
	l.mustContain(index)
	if size < 0 {
		panic(fmt.Sprintf("lines: negative size %d for line %d", size, index))
	}
	if l.sizes[index] == size {
		return
	}
	l.sizes[index] = size
	for _, fn := range l.listeners {
		fn(index, size)
	}
}

// OnChange registers a listener called after every effective SetLineSize
func (l *Lines) OnChange(fn LineListener) {
	l.listeners = append(l.listeners, fn)
}

// Start returns the offset of the first cell of line index
func (l *Lines) Start(index int) int {
	l.mustContain(index)
	offset := 0
	for i := 0; i < index; i++ {
		offset += l.sizes[i]
	}
	return offset
}

// Total returns the summed size of all lines
func (l *Lines) Total() int {
	total := 0
	for _, s := range l.sizes {
		total += s
	}
	return total
}

// IndexAt returns the line covering offset pos
func (l *Lines) IndexAt(pos int) (int, bool) {
	if pos < 0 {
		return InvalidIndex, false
	}
	offset := 0
	for i, s := range l.sizes {
		if pos < offset+s {
			return i, true
		}
		offset += s
	}
	return InvalidIndex, false
}

// Sizes returns a copy of all line sizes
func (l *Lines) Sizes() []int {
	return append([]int(nil), l.sizes...)
}

func (l *Lines) mustContain(index int) {
	if index < 0 || index >= len(l.sizes) {
		panic(fmt.Sprintf("lines: index %d out of range [0,%d)", index, len(l.sizes)))
	}
}
