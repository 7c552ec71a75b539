package filedoc

import "fmt"

type constError string

const (
	// ErrRange is returned when an offset or length
	// falls outside of a document's text.
	ErrRange = constError("out of range")
	// ErrForeignDocument is returned from [Reconstructor.SaveDocInfo]
	// when passed a nil document or one built by something else.
	ErrForeignDocument = constError("document was not built by filedoc")
	// ErrClosed is returned when editing a closed [Document].
	ErrClosed = constError("document is closed")
)

func (errStr constError) Error() string { return string(errStr) }

func rangeError(offset, length, size int) error {
	return fmt.Errorf(
		"%w: offset %d length %d exceeds text length %d",
		ErrRange, offset, length, size)
}
