package ogg

// Ogg pages are checksummed with an unreflected CRC-32 using the
// polynomial 0x04C11DB7 and a zero initial value. hash/crc32 only
// implements reflected CRCs, so the table is built here.
var crcTable [256]uint32

func init() {
	for i := range crcTable {
		r := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if r&0x80000000 != 0 {
				r = (r << 1) ^ 0x04C11DB7
			} else {
				r <<= 1
			}
		}
		crcTable[i] = r
	}
}

// checksum computes the Ogg page CRC over data. The CRC field of the
// page (bytes 22-25) must already be zeroed.
func checksum(data []byte) uint32 {
	var crc uint32
	for _, b := range data {
		crc = (crc << 8) ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}
