package docvirt

// Adapter is the stable face of one logical document handle.
// Its identity does not change while the document
// behind it is built, virtualized, and rebuilt.
// Constructed by [Controller.Register].
type Adapter struct {
	entry *entry
}

// Document returns the document for this handle,
// building it through the [Reconstructor] if it is not resident.
// Building a document may virtualize the document of a different adapter.
//
// Accessing a resident document that reports unsaved changes
// removes it from the resident set until [Adapter.Saved] is called.
//
// Errors wrap [ErrReconstruction] or [ErrMissingBackingStore].
// On error, the adapter and resident set are unchanged.
func (a *Adapter) Document() (Document, error) { return a.entry.get() }

// Ready reports whether the document is in memory.
// Ready never builds the document.
func (a *Adapter) Ready() bool { return a.entry.ready() }

// Close releases the document, if resident.
// Calling Close more than once has no further effect.
func (a *Adapter) Close() { a.entry.close() }

// Name returns the most recent name of the handle.
func (a *Adapter) Name() string { return a.entry.getName() }

// Reconstructor returns the current reconstructor.
func (a *Adapter) Reconstructor() Reconstructor { return a.entry.getReconstructor() }

// SetReconstructor replaces the reconstructor.
// A resident document without unsaved changes is discarded,
// so that the next [Adapter.Document] uses the new reconstructor.
// A document with unsaved changes is kept, and is still returned by
// [Adapter.Document] after the swap; the new reconstructor is used
// only once that document has been saved and later virtualized (or closed).
func (a *Adapter) SetReconstructor(reconstructor Reconstructor) {
	a.entry.setReconstructor(reconstructor)
}

// AddListener registers listener with the current reconstructor,
// to be attached to every document it builds.
func (a *Adapter) AddListener(listener Listener) { a.entry.addListener(listener) }

// Saved reports that the document was written to durable storage as name.
// An untitled or modified document rejoins the resident set.
func (a *Adapter) Saved(name string) { a.entry.saved(name) }

// Modified reports that the resident document has changes that are not saved.
// Such a document is never virtualized until [Adapter.Saved] or [Adapter.Close].
func (a *Adapter) Modified() { a.entry.modified() }

// Reset reports that the document can no longer be assumed clean.
// It is equivalent to [Adapter.Modified].
func (a *Adapter) Reset() { a.entry.modified() }

func (a *Adapter) String() string { return a.Name() }
