package docvirt

import (
	"errors"
	"fmt"
	"sync"
)

type (
	state uint8
	// entry manages the document behind one [Adapter].
	// It is the only mutator of its document reference;
	// resident set membership belongs to the [Controller].
	entry struct {
		controller    *Controller
		adapter       *Adapter
		reconstructor Reconstructor
		document      Document
		name          string
		mu            sync.Mutex
		state         state
	}
)

const (
	untitled state = iota
	notInQueue
	inQueue
	unmanaged
)

func (s state) unqueueable() bool {
	switch s {
	case untitled, unmanaged:
		return true
	default:
		return false
	}
}

func (s state) String() string {
	switch s {
	case untitled:
		return "untitled"
	case notInQueue:
		return "not in queue"
	case inQueue:
		return "in queue"
	case unmanaged:
		return "unmanaged"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// update runs fn with the entry locked and virtualizes
// the victims it returns only after the lock is released.
func (e *entry) update(fn func() []*entry) {
	var victims []*entry
	func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		victims = fn()
		e.checkInvariants()
	}()
	e.controller.virtualize(victims)
}

func (e *entry) get() (doc Document, err error) {
	e.update(func() []*entry {
		if doc = e.document; doc != nil {
			if e.state == inQueue && doc.ModifiedSinceSave() {
				e.controller.remove(e)
				e.state = unmanaged
			}
			return nil
		}
		if doc, err = e.make(); err != nil {
			return nil
		}
		e.document = doc
		if e.state != notInQueue {
			return nil
		}
		e.state = inQueue
		return e.controller.admit(e)
	})
	return doc, err
}

// make calls the reconstructor.
// Caller must hold the entry lock, and no other.
func (e *entry) make() (Document, error) {
	doc, err := e.reconstructor.Make()
	if err != nil {
		if errors.Is(err, ErrMissingBackingStore) ||
			errors.Is(err, ErrReconstruction) {
			return nil, err
		}
		return nil, reconstructionError(e.name, err)
	}
	if doc == nil {
		panic(fmt.Sprintf(
			"docvirt: reconstructor for %q returned neither a document nor an error",
			e.name))
	}
	e.controller.logger.Debug("materialized document",
		"name", e.name, "state", e.state)
	return doc, nil
}

func (e *entry) ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.document != nil
}

func (e *entry) modified() {
	e.update(func() []*entry {
		if e.document == nil {
			return nil
		}
		switch e.state {
		case inQueue:
			e.controller.remove(e)
			e.state = unmanaged
		case untitled:
			e.state = unmanaged
		}
		return nil
	})
}

func (e *entry) saved(name string) {
	e.update(func() []*entry {
		e.name = name
		if !e.state.unqueueable() {
			return nil
		}
		e.state = notInQueue
		if e.document == nil {
			return nil
		}
		e.state = inQueue
		return e.controller.admit(e)
	})
}

func (e *entry) close() {
	e.update(func() []*entry {
		if e.state == inQueue {
			e.controller.remove(e)
		}
		if doc := e.document; doc != nil {
			e.saveInfo(e.reconstructor, doc)
			doc.Close()
			e.document = nil
		}
		e.state = notInQueue
		return nil
	})
}

// evict is the side effect of being detached from the resident set.
// The entry may have changed between detachment and this call;
// only a clean entry that was not re-admitted is virtualized.
func (e *entry) evict() {
	e.update(func() []*entry {
		if e.state != inQueue ||
			e.controller.contains(e) {
			return nil
		}
		e.saveInfo(e.reconstructor, e.document)
		e.document = nil
		e.state = notInQueue
		e.controller.logger.Debug("virtualized document", "name", e.name)
		return nil
	})
}

func (e *entry) getReconstructor() Reconstructor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reconstructor
}

// setReconstructor swaps the reconstructor and discards
// a resident clean document so the next access rebuilds it.
// Documents with unsaved changes are kept.
func (e *entry) setReconstructor(reconstructor Reconstructor) {
	e.update(func() []*entry {
		previous := e.reconstructor
		e.reconstructor = reconstructor
		doc := e.document
		if doc == nil || e.state == unmanaged {
			return nil
		}
		if e.state == inQueue {
			e.controller.remove(e)
			e.state = notInQueue
		}
		e.saveInfo(previous, doc)
		e.document = nil
		return nil
	})
}

func (e *entry) addListener(listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconstructor.AddDocumentListener(listener)
}

func (e *entry) getName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

func (e *entry) saveInfo(reconstructor Reconstructor, doc Document) {
	if err := reconstructor.SaveDocInfo(doc); err != nil {
		e.controller.logger.Warn("could not save document info",
			"name", e.name, "error", err)
	}
}

// checkInvariants must be called with the entry lock held.
func (e *entry) checkInvariants() {
	if !debugging {
		return
	}
	switch e.state {
	case notInQueue:
		assert(e.document == nil,
			"virtualized entry holds a document")
	case inQueue, unmanaged:
		assert(e.document != nil,
			e.state.String()+" entry has no document")
	}
	if e.state.unqueueable() {
		assert(!e.controller.contains(e),
			e.state.String()+" entry is in the resident set")
	}
}
