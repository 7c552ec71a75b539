// Package docvirt implements a bounded cache of "physical" documents
// behind an unbounded number of logical document handles.
//
// Each handle registered with a [Controller] receives a stable [Adapter].
// The heavyweight document behind an adapter is built on demand by the
// handle's [Reconstructor] and may later be discarded ("virtualized")
// to keep the number of resident documents within capacity.
//
// The following is a summary (intended for maintainers).
//
// Entry states:
//
//   - untitled
//
//     The handle has no durable backing. Its document is kept
//     while present and is never placed in the resident set.
//
//   - not in queue
//
//     Virtualized. No document is held.
//
//   - in queue
//
//     A clean document is held and the entry is a member of the resident set.
//     Only entries in this state may be evicted.
//
//   - unmanaged
//
//     The document has changes that were not saved.
//     It is held until saved (or closed) and is never placed in the resident set.
//
// Untitled and unmanaged entries are "unqueueable".
//
// Resident set:
//
//   - Ordered by first admission, not by last access.
//
//     Accessing a member does not move it; eviction always takes
//     the oldest admitted member. Callers must not assume LRU behaviour.
//
//   - Bounded: len(resident) <= capacity after every operation.
//
// Locks:
//
//   - The controller lock guards resident set membership.
//
//   - Each entry lock guards that entry's state and document.
//
//   - An entry lock may be held while taking the controller lock,
//     never the reverse. Code that detaches entries from the resident
//     set returns them as "victims" and virtualizes them only after
//     every lock it held has been released. Reconstruction runs
//     with only the calling entry's lock held.
package docvirt
