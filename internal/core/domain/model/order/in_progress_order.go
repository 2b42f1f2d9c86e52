package order

import (
	"errors"
	"strings"
)

// ErrInProgressOrderIsNotConstructed is returned when an InProgressOrder
// instance was not created through the NewInProgressOrder factory method.
var ErrInProgressOrderIsNotConstructed = errors.New(
	"InProgressOrder must be created via NewInProgressOrder constructor",
)

// InProgressOrder is the aggregate root for the order a session is building
// up before completion. It maps food item names to quantities while keeping
// each item's first-added position, so that confirmation replies enumerate
// the order the same way on every call.
//
// InProgressOrder follows these invariants:
//   - Item names are distinct; merging an existing name overwrites its quantity
//   - Every line satisfies the ItemQuantity invariants
//   - Can only be created through NewInProgressOrder
//
// The aggregate is not safe for concurrent use; the session store serializes
// access per session key.
type InProgressOrder struct {
	// lines holds the order's items in first-added position.
	lines []ItemQuantity

	// index maps an item name to its position in lines.
	index map[string]int

	// isConstructed ensures the order was created via NewInProgressOrder
	isConstructed bool
}

// NewInProgressOrder creates an empty in-progress order.
func NewInProgressOrder() *InProgressOrder {
	return &InProgressOrder{
		index:         make(map[string]int),
		isConstructed: true,
	}
}

// Validate ensures the instance was properly constructed through
// NewInProgressOrder. This prevents bypassing initialization by directly
// instantiating the struct.
func (o *InProgressOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrInProgressOrderIsNotConstructed
	}

	return nil
}

// Merge folds the given lines into the order. An item already present has its
// quantity overwritten, not summed; a new item is appended. When the same
// name appears more than once in items, the last occurrence wins.
func (o *InProgressOrder) Merge(items []ItemQuantity) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		if pos, ok := o.index[item.Name()]; ok {
			o.lines[pos] = item
			continue
		}

		o.index[item.Name()] = len(o.lines)
		o.lines = append(o.lines, item)
	}

	return nil
}

// Replace discards the current contents and sets the order to the given
// lines, with the same last-write-wins handling of duplicate names as Merge.
func (o *InProgressOrder) Replace(items []ItemQuantity) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.lines = nil
	o.index = make(map[string]int)
	return o.Merge(items)
}

// Remove deletes the named items from the order. It returns the names that
// were present and removed, and the names that were not found, both in
// request order. Remove never fails: asking to remove an absent item is a
// reportable outcome, not an error.
func (o *InProgressOrder) Remove(names []string) (removed []string, notFound []string) {
	for _, name := range names {
		pos, ok := o.index[name]
		if !ok {
			notFound = append(notFound, name)
			continue
		}

		o.lines = append(o.lines[:pos], o.lines[pos+1:]...)
		delete(o.index, name)
		for n, p := range o.index {
			if p > pos {
				o.index[n] = p - 1
			}
		}
		removed = append(removed, name)
	}

	return removed, notFound
}

// IsEmpty reports whether the order has no lines.
func (o *InProgressOrder) IsEmpty() bool {
	return len(o.lines) == 0
}

// Lines returns a copy of the order's lines in first-added position.
func (o *InProgressOrder) Lines() []ItemQuantity {
	out := make([]ItemQuantity, len(o.lines))
	copy(out, o.lines)
	return out
}

// Summary renders the order as "<qty> <item>" segments joined by commas,
// e.g. "2 Pizza, 1 Mango Lassi". An empty order yields "".
func (o *InProgressOrder) Summary() string {
	segments := make([]string, len(o.lines))
	for i, line := range o.lines {
		segments[i] = line.String()
	}
	return strings.Join(segments, ", ")
}
