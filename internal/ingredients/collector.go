package ingredients

import (
	"strings"
	"sync"

	"github.com/savorly/savorly-client/internal/model"
)

var _ model.IngredientSink = (*Collector)(nil)

// Collector owns the canonical ingredient list for one generation cycle.
// Entries are canonicalized (trimmed, lower-cased) and unique; existing
// entries keep their relative order and new ones append in arrival order.
type Collector struct {
	mu       sync.Mutex
	items    []string
	notifier model.Notifier
}

// NewCollector creates an empty collector.
func NewCollector(notifier model.Notifier) *Collector {
	return &Collector{notifier: notifier}
}

// Canonicalize normalizes a raw ingredient string for comparison and storage.
func Canonicalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Merge unions a raw extraction batch into the list. Duplicates, both within
// the batch and against existing entries, are dropped silently. Returns the
// number of genuinely new items; toasts reporting extraction results use this
// count, not the raw batch size.
func (c *Collector) Merge(batch []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, raw := range batch {
		item := Canonicalize(raw)
		if item == "" || c.containsLocked(item) {
			continue
		}
		c.items = append(c.items, item)
		added++
	}

	return added
}

// AddOne appends a single manually entered ingredient. A duplicate surfaces
// a warning toast and leaves the list unchanged.
func (c *Collector) AddOne(raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := Canonicalize(raw)
	if item == "" {
		return nil
	}
	if c.containsLocked(item) {
		c.notifier.Notify("Ingredient already added", model.ToastWarning)
		return model.ErrDuplicateIngredient
	}

	c.items = append(c.items, item)
	return nil
}

// RemoveAt removes the item at index. Out-of-bounds indexes are a no-op.
func (c *Collector) RemoveAt(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Reset clears the list for a new generation cycle.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items returns a snapshot of the current list.
func (c *Collector) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.items...)
}

// Len returns the number of collected ingredients.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *Collector) containsLocked(item string) bool {
	for _, existing := range c.items {
		if existing == item {
			return true
		}
	}
	return false
}
