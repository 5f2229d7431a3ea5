// Package cursor provides a bounded, offset-tracking view over a byte slice.
//
// A [Cursor] reads and writes fixed-width numbers and NUL-terminated strings
// at its current offset, advancing by the width of each value. Subviews share
// the backing slice: [Cursor.Subarray] leaves the parent offset alone, while
// [Cursor.Slice] reserves a window and moves past it.
//
// Typed accessors do not return errors. The first out-of-window access is
// recorded and reported by [Cursor.Err]; later accesses yield zero values.
//
// Objects with a fixed or self-declared size implement [Readable] and
// [Writable]. [Cursor.Read] and [Cursor.Write] hand such an object a bounded
// subview and then advance by the object's declared ByteLength, regardless of
// how many bytes it actually touched:
//
//	var h Header
//	if err := c.Read(&h); err != nil {
//	    return err
//	}
//	// c.Offset advanced by h.ByteLength()
package cursor
