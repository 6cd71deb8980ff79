package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/metrics"
)

// Cart operation names carried by CartEvent.
const (
	CartOpAdd    = "add"
	CartOpRemove = "remove"
	CartOpUpdate = "update_quantity"
	CartOpClear  = "clear"
)

// CartEvent is published after every cart mutation.
type CartEvent struct {
	Op        string
	LineID    string
	ItemCount int
	Total     float64
}

// Cart is an ordered list of cart lines owned by one customer session.
type Cart interface {
	Add(line model.CartLine) (model.CartLine, error)
	Remove(id string) bool
	UpdateQuantity(id string, quantity int) bool
	Clear()
	Lines() []model.CartLine
	TotalPrice() float64
	ItemCount() int
	Subscribe(fn func(CartEvent)) func()
}

// CartStore is the in-memory Cart. Lines keep insertion order.
type CartStore struct {
	mu    sync.RWMutex
	lines []model.CartLine
	subs  subscribers[CartEvent]
	newID func() string
}

var _ Cart = (*CartStore)(nil)

// NewCartStore creates an empty cart.
func NewCartStore() *CartStore {
	return &CartStore{newID: uuid.NewString}
}

// Add merges line into an existing line with the same id or the same name,
// size and flavors by summing quantities. Otherwise the line is appended,
// with a generated id when it has none. It returns the stored line.
func (c *CartStore) Add(line model.CartLine) (model.CartLine, error) {
	if err := line.Validate(); err != nil {
		return model.CartLine{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	line = line.Clone()

	c.mu.Lock()
	idx := c.match(line)
	if idx >= 0 {
		c.lines[idx].Quantity += line.Quantity
	} else {
		if line.ID == "" {
			line.ID = c.newID()
		}
		c.lines = append(c.lines, line)
		idx = len(c.lines) - 1
	}
	stored := c.lines[idx].Clone()
	event := c.eventLocked(CartOpAdd, stored.ID)
	c.mu.Unlock()

	c.publish(event)
	return stored, nil
}

func (c *CartStore) match(line model.CartLine) int {
	key := line.MergeKey()
	for i, existing := range c.lines {
		if line.ID != "" && existing.ID == line.ID {
			return i
		}
		if existing.MergeKey() == key {
			return i
		}
	}
	return -1
}

// Remove deletes the line with the given id. It reports whether a line was
// removed; a missing id is a no-op.
func (c *CartStore) Remove(id string) bool {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	event := c.eventLocked(CartOpRemove, id)
	c.mu.Unlock()

	c.publish(event)
	return true
}

// UpdateQuantity sets the quantity of a line exactly. A quantity of zero or
// less removes the line. It reports whether the line existed.
func (c *CartStore) UpdateQuantity(id string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(id)
	}

	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	c.lines[idx].Quantity = quantity
	event := c.eventLocked(CartOpUpdate, id)
	c.mu.Unlock()

	c.publish(event)
	return true
}

// Clear empties the cart.
func (c *CartStore) Clear() {
	c.mu.Lock()
	c.lines = nil
	event := c.eventLocked(CartOpClear, "")
	c.mu.Unlock()

	c.publish(event)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *CartStore) Lines() []model.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.Clone()
	}
	return out
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (c *CartStore) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalLocked()
}

// ItemCount is the sum of quantities over all lines.
func (c *CartStore) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countLocked()
}

// Subscribe registers fn to run after every mutation.
func (c *CartStore) Subscribe(fn func(CartEvent)) func() {
	return c.subs.add(fn)
}

func (c *CartStore) indexOf(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c *CartStore) totalLocked() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *CartStore) countLocked() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *CartStore) eventLocked(op, id string) CartEvent {
	return CartEvent{Op: op, LineID: id, ItemCount: c.countLocked(), Total: c.totalLocked()}
}

func (c *CartStore) publish(event CartEvent) {
	metrics.RecordCartOperation(event.Op)
	c.subs.notify(event)
}
