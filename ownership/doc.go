// Package ownership implements the ownership-transfer wrapper for engine handles.
//
// A Ref pairs exactly one engine.Handle with one Mode:
//
//	Owned     created by Own: the Ref destroys the handle when closed.
//	Copied    created by Copy: a fresh engine copy, destroyed when closed.
//	Borrowed  created by Borrow: an alias; closing never destroys.
//	Moved     the destination of Move from an owning Ref.
//	Inert     an emptied Ref (after Move, Close or Release).
//
// Whether Close destroys is decided once, when the Ref is constructed, and is
// carried unchanged by Move. This yields the central guarantee of the package:
// every owned handle is destroyed exactly once, by the last owning Ref.
//
// Kind values (GraphKind, VertexSelectorKind, ...) bind a Ref to the destroy
// and copy primitives of one engine entity kind.
//
// A Ref is not safe for concurrent use; a Move must not race with any other
// access to either Ref.
package ownership
