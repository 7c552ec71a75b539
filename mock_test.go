package docvirt_test

import (
	"sync"
	"sync/atomic"

	"github.com/djdv/go-docvirt"
)

type (
	mockDocument struct {
		name     string
		modified atomic.Bool
		closed   atomic.Bool
	}
	mockReconstructor struct {
		makeErr   error
		saveErr   error
		name      string
		listeners []docvirt.Listener
		saved     []*mockDocument
		last      *mockDocument
		mu        sync.Mutex
		makes     int
		makeNil   bool
	}
)

func (doc *mockDocument) ModifiedSinceSave() bool { return doc.modified.Load() }
func (doc *mockDocument) Close()                  { doc.closed.Store(true) }

func newReconstructor(name string) *mockReconstructor {
	return &mockReconstructor{name: name}
}

func (rec *mockReconstructor) Make() (docvirt.Document, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.makeErr != nil {
		return nil, rec.makeErr
	}
	if rec.makeNil {
		return nil, nil
	}
	rec.makes++
	rec.last = &mockDocument{name: rec.name}
	return rec.last, nil
}

func (rec *mockReconstructor) SaveDocInfo(doc docvirt.Document) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.saved = append(rec.saved, doc.(*mockDocument))
	return rec.saveErr
}

func (rec *mockReconstructor) AddDocumentListener(listener docvirt.Listener) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.listeners = append(rec.listeners, listener)
}

func (rec *mockReconstructor) makeCount() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.makes
}

func (rec *mockReconstructor) saveCount() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return len(rec.saved)
}

func (rec *mockReconstructor) lastDocument() *mockDocument {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.last
}

func (rec *mockReconstructor) setMakeErr(err error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.makeErr = err
}
