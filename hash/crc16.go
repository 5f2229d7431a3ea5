package hash

import "github.com/sigurn/crc16"

var crc16Table = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// CRC16 returns the CRC-16/CCITT-FALSE checksum of data.
func CRC16(data []byte) uint16 {
	return crc16.Checksum(data, crc16Table)
}
