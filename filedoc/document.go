package filedoc

import (
	"slices"
	"sync"

	"github.com/djdv/go-docvirt"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

type (
	// Range is a half-open span of byte offsets.
	Range struct {
		Start, End int
	}
	// PresentationState is the view state of a [Document]
	// that is preserved across virtualization.
	PresentationState struct {
		Selection Range
		Cursor    int
	}
	// Document is the in-memory text of one file.
	// Safe for concurrent use.
	Document struct {
		filesystem billy.Filesystem
		path       string
		text       []byte
		listeners  []docvirt.Listener
		view       PresentationState
		mu         sync.Mutex
		modified,
		closed bool
	}
)

const filePermissions = 0o644

// Text returns the current contents.
func (doc *Document) Text() string {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return string(doc.text)
}

// Path returns the file the document is saved to.
func (doc *Document) Path() string {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.path
}

// Insert adds text at offset and notifies listeners.
func (doc *Document) Insert(offset int, text string) error {
	return doc.edit(func() error {
		if offset < 0 || offset > len(doc.text) {
			return rangeError(offset, 0, len(doc.text))
		}
		doc.text = slices.Insert(doc.text, offset, []byte(text)...)
		doc.modified = true
		return nil
	})
}

// Remove deletes length bytes starting at offset and notifies listeners.
func (doc *Document) Remove(offset, length int) error {
	return doc.edit(func() error {
		if offset < 0 || offset > len(doc.text) ||
			length < 0 || length > len(doc.text)-offset {
			return rangeError(offset, length, len(doc.text))
		}
		doc.text = slices.Delete(doc.text, offset, offset+length)
		doc.modified = true
		return nil
	})
}

// Revert replaces the text with the contents of the document's path,
// marks the document clean, and notifies listeners.
func (doc *Document) Revert() error {
	return doc.edit(func() error {
		text, err := util.ReadFile(doc.filesystem, doc.path)
		if err != nil {
			return err
		}
		doc.text = text
		doc.modified = false
		return nil
	})
}

// edit applies change with the document locked.
// change must set the modified flag itself.
func (doc *Document) edit(change func() error) error {
	listeners, err := func() ([]docvirt.Listener, error) {
		doc.mu.Lock()
		defer doc.mu.Unlock()
		if doc.closed {
			return nil, ErrClosed
		}
		if err := change(); err != nil {
			return nil, err
		}
		doc.view = doc.view.clamp(len(doc.text))
		return slices.Clone(doc.listeners), nil
	}()
	if err != nil {
		return err
	}
	for _, listener := range listeners {
		listener.DocumentChanged(doc)
	}
	return nil
}

// Cursor returns the cursor offset.
func (doc *Document) Cursor() int {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.view.Cursor
}

// SetCursor moves the cursor, clamped to the text.
func (doc *Document) SetCursor(offset int) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.view.Cursor = offset
	doc.view = doc.view.clamp(len(doc.text))
}

// Selection returns the selected span.
func (doc *Document) Selection() Range {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.view.Selection
}

// Select sets the selected span, clamped to the text.
func (doc *Document) Select(selection Range) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.view.Selection = selection
	doc.view = doc.view.clamp(len(doc.text))
}

// Save writes the text to the document's path
// and marks the document clean.
func (doc *Document) Save() error {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if err := util.WriteFile(doc.filesystem, doc.path, doc.text, filePermissions); err != nil {
		return err
	}
	doc.modified = false
	return nil
}

// SaveAs writes the text to path, which becomes the document's path.
func (doc *Document) SaveAs(path string) error {
	doc.mu.Lock()
	previous := doc.path
	doc.path = path
	doc.mu.Unlock()
	if err := doc.Save(); err != nil {
		doc.mu.Lock()
		doc.path = previous
		doc.mu.Unlock()
		return err
	}
	return nil
}

// ModifiedSinceSave reports whether the text
// has changed since it was read or saved.
func (doc *Document) ModifiedSinceSave() bool {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.modified
}

// Close discards the text. Edits to a closed document fail.
func (doc *Document) Close() {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.closed = true
	doc.text = nil
	doc.listeners = nil
}

// Closed reports whether [Document.Close] was called.
func (doc *Document) Closed() bool {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.closed
}

func (doc *Document) presentation() PresentationState {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return doc.view
}

func (view PresentationState) clamp(size int) PresentationState {
	bound := func(offset int) int { return min(max(offset, 0), size) }
	view.Cursor = bound(view.Cursor)
	view.Selection.Start = bound(view.Selection.Start)
	view.Selection.End = max(bound(view.Selection.End), view.Selection.Start)
	return view
}
