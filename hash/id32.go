package hash

import "math/bits"

const (
	id32Polynomial  = 0xA001
	id32LogicalBits = 30
)

var id32Table = func() (table [256]uint32) {
	for i := range table {
		c := uint32(i) //nolint:gosec // i < 256
		for range 8 {
			if c&1 != 0 {
				c = (c >> 1) ^ (id32Polynomial << (id32LogicalBits - 16))
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}()

// ID32 returns the object hash of data. The result always has its top bit set.
func ID32(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h = (h >> 8) ^ id32Table[byte(h)^b]
	}
	h = bits.ReverseBytes32(h)
	return h>>(32-id32LogicalBits) | 0x80000000
}
