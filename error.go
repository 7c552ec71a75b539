package docvirt

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New] and [Controller.SetCapacity].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrReconstruction is returned from [Adapter.Document]
	// when a [Reconstructor] could not build a document.
	// Errors from [Reconstructor.Make] that do not already
	// wrap a sentinel from this package are wrapped with it.
	ErrReconstruction = constError("document reconstruction failed")
	// ErrMissingBackingStore should be wrapped by a [Reconstructor]
	// when the durable file behind a document was moved or deleted.
	ErrMissingBackingStore = constError("document backing store missing")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func reconstructionError(name string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrReconstruction, name, err)
}
