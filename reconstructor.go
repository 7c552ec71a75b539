package docvirt

type (
	// Document is a heavyweight, in-memory document
	// built by a [Reconstructor].
	Document interface {
		// ModifiedSinceSave reports whether the document
		// holds changes not present in durable storage.
		ModifiedSinceSave() bool
		// Close releases the document.
		// Called when its [Adapter] is closed while resident.
		Close()
	}
	// Listener observes a [Document].
	// Listeners are attached by the [Reconstructor]
	// to every document it builds.
	Listener interface {
		DocumentChanged(Document)
	}
	// ListenerFunc adapts a function to the [Listener] interface.
	ListenerFunc func(Document)

	// Reconstructor builds and tears down the document behind one handle.
	Reconstructor interface {
		// Make builds a fresh document from durable storage.
		// Make must return a non-nil document or an error;
		// errors for missing storage should wrap [ErrMissingBackingStore].
		Make() (Document, error)
		// SaveDocInfo is called once, immediately before a
		// document built by this reconstructor is discarded.
		// It may capture presentation state (cursor, selection, etc.)
		// to be restored by a later Make.
		// Returned errors are logged and otherwise ignored.
		SaveDocInfo(Document) error
		// AddDocumentListener registers a listener to be attached
		// to every document built after the call.
		AddDocumentListener(Listener)
	}

	// RegistrationListener is notified synchronously
	// whenever a handle is registered with a [Controller].
	RegistrationListener interface {
		Registered(name string, adapter *Adapter)
	}
	// RegistrationFunc adapts a function to the [RegistrationListener] interface.
	RegistrationFunc func(name string, adapter *Adapter)
)

func (fn ListenerFunc) DocumentChanged(doc Document) { fn(doc) }

func (fn RegistrationFunc) Registered(name string, adapter *Adapter) { fn(name, adapter) }
