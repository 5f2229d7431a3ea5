package hash

// The resource CRC table is generated with arithmetic (sign-extending) right
// shifts, so it differs from the IEEE table in the high byte of most entries.
var crc32Table = func() (table [256]uint32) {
	poly := uint32(0xEDB88320)
	for i := range table {
		c := int32(i) //nolint:gosec // i < 256
		for range 8 {
			if c&1 != 0 {
				c = (c >> 1) ^ int32(poly) //nolint:gosec // reinterpreted as signed
			} else {
				c >>= 1
			}
		}
		table[i] = uint32(c) //nolint:gosec // reinterpreted as unsigned
	}
	return table
}()

// CRC32 returns the resource CRC of data.
func CRC32(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = (crc >> 8) ^ crc32Table[byte(crc)^b]
	}
	return ^crc
}
