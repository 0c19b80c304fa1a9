package chain

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*Chain)(nil)

type cell struct {
	value int32
	next  *cell
}

// Chain is an ordered sequence of int32 values. The zero value is empty.
type Chain struct {
	head *cell
}

// New returns an empty chain.
func New() *Chain {
	return &Chain{}
}

// Insert adds v at pos, or after the last cell when pos is Tail.
// It panics with a *BoundsError if pos is outside [0, Len()].
func (c *Chain) Insert(v int32, pos Position) {
	if i, ok := pos.Index(); ok {
		c.InsertAt(v, i)
		return
	}
	c.Append(v)
}

// Append adds v as the new last cell.
func (c *Chain) Append(v int32) {
	link := &c.head
	for *link != nil {
		link = &(*link).next
	}
	*link = &cell{value: v}
}

// InsertAt splices v in so it becomes the cell at index. The previous
// occupant of index, if any, and everything after it move one place later.
// index == Len() appends.
func (c *Chain) InsertAt(v int32, index int) {
	if n := c.Len(); index < 0 || index > n {
		outOfBounds("insert", index, n, ErrOutOfBoundsInsert)
	}

	link := c.linkTo(index)
	*link = &cell{value: v, next: *link}
}

// Delete unlinks the cell at index. Later cells move one place earlier.
// It panics with a *BoundsError if index is outside [0, Len()).
func (c *Chain) Delete(index int) {
	if n := c.Len(); index < 0 || index >= n {
		outOfBounds("delete", index, n, ErrOutOfBoundsDelete)
	}

	link := c.linkTo(index)
	victim := *link
	*link = victim.next
	victim.next = nil
}

// Get returns the value at index and true, or 0 and false if there is none.
func (c *Chain) Get(index int) (int32, bool) {
	if index < 0 {
		return 0, false
	}
	for n, i := c.head, 0; n != nil; n, i = n.next, i+1 {
		if i == index {
			return n.value, true
		}
	}
	return 0, false
}

// Len counts the cells reachable from the head.
func (c *Chain) Len() int {
	length := 0
	for n := c.head; n != nil; n = n.next {
		length++
	}
	return length
}

// linkTo returns the pointer that owns the cell at index: the head pointer
// for 0, otherwise the next field of the cell before it. index must be
// within [0, Len()].
func (c *Chain) linkTo(index int) **cell {
	link := &c.head
	for i := 0; i < index; i++ {
		link = &(*link).next
	}
	return link
}

// Empty reports whether the chain has no cells.
func (c *Chain) Empty() bool {
	return c.head == nil
}

// Size is Len, for containers.Container.
func (c *Chain) Size() int {
	return c.Len()
}

// Clear drops every cell, unlinking them one at a time from the head.
func (c *Chain) Clear() {
	for c.head != nil {
		n := c.head
		c.head = n.next
		n.next = nil
	}
}

// Values returns the values in order.
func (c *Chain) Values() []interface{} {
	values := make([]interface{}, 0, c.Len())
	for n := c.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Int32s returns the values in order as a typed slice.
func (c *Chain) Int32s() []int32 {
	values := make([]int32, 0, c.Len())
	for n := c.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

func (c *Chain) String() string {
	values := make([]string, 0)
	for n := c.head; n != nil; n = n.next {
		values = append(values, fmt.Sprintf("%d", n.value))
	}
	return "[" + strings.Join(values, ", ") + "]"
}

// Validate checks that following the links from the head terminates.
func (c *Chain) Validate() error {
	slow, fast := c.head, c.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return ErrCycle
		}
	}
	return nil
}
