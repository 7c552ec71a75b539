package filedoc

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/djdv/go-docvirt"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Reconstructor builds [Document]s from a file.
// Safe for concurrent use.
// Constructed by [NewReconstructor].
type Reconstructor struct {
	filesystem billy.Filesystem
	path       string
	listeners  []docvirt.Listener
	view       PresentationState
	mu         sync.Mutex
}

// NewReconstructor returns a [Reconstructor] for the file at path.
func NewReconstructor(filesystem billy.Filesystem, path string) *Reconstructor {
	return &Reconstructor{
		filesystem: filesystem,
		path:       path,
	}
}

// Path returns the file that documents are read from.
func (rec *Reconstructor) Path() string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.path
}

// Rename changes the file that later documents are read from.
func (rec *Reconstructor) Rename(path string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.path = path
}

// Make reads the file and restores the last saved [PresentationState].
// A missing file is reported as [docvirt.ErrMissingBackingStore]
// and contents that are not valid UTF-8 as [docvirt.ErrReconstruction].
func (rec *Reconstructor) Make() (docvirt.Document, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	text, err := util.ReadFile(rec.filesystem, rec.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q: %w",
				docvirt.ErrMissingBackingStore, rec.path, err)
		}
		return nil, fmt.Errorf("%w: %q: %w",
			docvirt.ErrReconstruction, rec.path, err)
	}
	if !utf8.Valid(text) {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8",
			docvirt.ErrReconstruction, rec.path)
	}
	return &Document{
		filesystem: rec.filesystem,
		path:       rec.path,
		text:       text,
		listeners:  slices.Clone(rec.listeners),
		view:       rec.view.clamp(len(text)),
	}, nil
}

// SaveDocInfo captures the presentation state of doc.
func (rec *Reconstructor) SaveDocInfo(doc docvirt.Document) error {
	document, ok := doc.(*Document)
	if !ok || document == nil {
		return fmt.Errorf("%w: %T", ErrForeignDocument, doc)
	}
	view := document.presentation()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.view = view
	return nil
}

// AddDocumentListener attaches listener to every later [Document].
func (rec *Reconstructor) AddDocumentListener(listener docvirt.Listener) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.listeners = append(rec.listeners, listener)
}
