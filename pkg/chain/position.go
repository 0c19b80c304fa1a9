package chain

import "strconv"

// Position is an optional index for Insert. The zero value is Tail.
type Position struct {
	index int
	set   bool
}

// Tail appends after the last cell.
var Tail = Position{}

// At targets a concrete index.
func At(index int) Position {
	return Position{index: index, set: true}
}

// Index returns the index and whether one was given.
func (p Position) Index() (int, bool) {
	return p.index, p.set
}

func (p Position) String() string {
	if !p.set {
		return "tail"
	}
	return strconv.Itoa(p.index)
}
