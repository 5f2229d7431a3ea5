// Package sizing provides checked conversions between the host int and the
// 32-bit offsets and sizes stored in a container.
package sizing

import "math"

// ToUint32 converts a non-negative int to uint32, returning overflowErr if
// it doesn't fit.
func ToUint32(size int, overflowErr error) (uint32, error) {
	if size < 0 || uint64(size) > math.MaxUint32 {
		return 0, overflowErr
	}
	return uint32(size), nil
}

// ToInt converts a uint64 to int, returning overflowErr if it doesn't fit.
func ToInt(size uint64, overflowErr error) (int, error) {
	if size > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(size), nil
}

// Span returns the exclusive end of the region [offset, offset+size) and
// whether it lies within limit bytes. The sum is computed in 64 bits so
// 32-bit fields cannot wrap.
func Span(offset, size uint32, limit int) (uint64, bool) {
	end := uint64(offset) + uint64(size)
	return end, limit >= 0 && end <= uint64(limit)
}
