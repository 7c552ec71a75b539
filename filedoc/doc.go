// Package filedoc provides a [docvirt.Reconstructor] for text files
// stored on a billy filesystem.
//
// Presentation state (cursor and selection) is captured
// when a document is virtualized and restored when it is rebuilt.
// Listeners added to a [Reconstructor] are attached to every
// [Document] it builds.
package filedoc

import "github.com/djdv/go-docvirt"

var (
	_ docvirt.Reconstructor = (*Reconstructor)(nil)
	_ docvirt.Document      = (*Document)(nil)
)
