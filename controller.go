package docvirt

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/djdv/go-docvirt/internal/ring"
)

type (
	// Controller bounds the number of resident documents
	// across every [Adapter] registered with it.
	// Safe for concurrent use.
	// Constructed by [New].
	Controller struct {
		logger    *slog.Logger
		resident  *ring.Set[*entry]
		listeners []*registration
		capacity  int
		mu,
		listenersMu sync.Mutex
	}
	registration struct {
		RegistrationListener
	}
)

// MinimumCapacity defines the lowest value supported by [New]
// and [Controller.SetCapacity].
const MinimumCapacity = 1

// New creates a [Controller] that keeps at most
// capacity clean documents resident.
func New(capacity int, options ...Option) (*Controller, error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	c := &Controller{
		capacity: capacity,
		resident: ring.New[*entry](capacity),
	}
	for _, apply := range options {
		apply(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// Register creates the [Adapter] for a logical document handle.
// If durable is false, the handle is untitled:
// its document is never counted against capacity until saved.
// Registration listeners are notified before Register returns.
func (c *Controller) Register(name string, reconstructor Reconstructor, durable bool) *Adapter {
	initial := untitled
	if durable {
		initial = notInQueue
	}
	var (
		e = &entry{
			controller:    c,
			reconstructor: reconstructor,
			name:          name,
			state:         initial,
		}
		adapter = &Adapter{entry: e}
	)
	e.adapter = adapter
	c.logger.Debug("registered document",
		"name", name, "state", initial)
	c.notifyRegistered(name, adapter)
	return adapter
}

// Capacity returns the maximum number of resident documents.
func (c *Controller) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// SetCapacity changes the maximum number of resident documents.
// If the resident set is larger than capacity,
// the oldest admitted documents are virtualized.
func (c *Controller) SetCapacity(capacity int) error {
	if capacity < MinimumCapacity {
		return minCapacityError(capacity)
	}
	var victims []*entry
	func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.capacity = capacity
		victims = c.trim(capacity)
	}()
	c.logger.Debug("capacity changed",
		"capacity", capacity, "evicting", len(victims))
	c.virtualize(victims)
	return nil
}

// Len returns the number of documents in the resident set.
// Untitled documents and documents with unsaved changes are not counted.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resident.Len()
}

// Residents returns the adapters of the resident set,
// oldest admitted first, as of the call.
func (c *Controller) Residents() iter.Seq[*Adapter] {
	c.mu.Lock()
	entries := slices.Collect(c.resident.All())
	c.mu.Unlock()
	return func(yield func(*Adapter) bool) {
		for _, e := range entries {
			if !yield(e.adapter) {
				return
			}
		}
	}
}

// AddRegistrationListener adds a listener that is notified,
// in the order listeners were added, of every subsequent [Controller.Register].
// The returned function removes the listener.
func (c *Controller) AddRegistrationListener(listener RegistrationListener) (remove func()) {
	reg := &registration{RegistrationListener: listener}
	c.listenersMu.Lock()
	c.listeners = append(c.listeners, reg)
	c.listenersMu.Unlock()
	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(r *registration) bool {
			return r == reg
		})
	}
}

// ClearRegistrationListeners removes every registration listener.
func (c *Controller) ClearRegistrationListeners() {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.listeners = nil
}

func (c *Controller) notifyRegistered(name string, adapter *Adapter) {
	c.listenersMu.Lock()
	listeners := slices.Clone(c.listeners)
	c.listenersMu.Unlock()
	for _, reg := range listeners {
		reg.Registered(name, adapter)
	}
}

// admit adds e to the resident set, detaching the
// oldest member first if the set is full.
// Detached entries are returned and must be passed
// to [Controller.virtualize] by the caller once
// it has released its own entry lock.
func (c *Controller) admit(e *entry) []*entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resident.Contains(e) {
		return nil
	}
	victims := c.trim(c.capacity - 1)
	c.resident.PushBack(e)
	if debugging {
		assert(c.resident.Len() <= c.capacity,
			"resident set exceeds capacity")
	}
	return victims
}

// trim detaches the oldest members until at most size remain.
// Caller must hold the controller lock.
func (c *Controller) trim(size int) []*entry {
	var victims []*entry
	for c.resident.Len() > size {
		victim, _ := c.resident.PopFront()
		victims = append(victims, victim)
	}
	return victims
}

func (c *Controller) remove(e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resident.Remove(e)
}

func (c *Controller) contains(e *entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resident.Contains(e)
}

// virtualize performs the eviction side effect for detached entries.
// Caller must not hold any lock.
func (c *Controller) virtualize(victims []*entry) {
	for _, victim := range victims {
		victim.evict()
	}
}
