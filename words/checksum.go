package words

import "github.com/snksoft/crc"

var (
	crcTable = crc.NewTable(crc.CRC32)
)

// Checksum returns the CRC-32 (IEEE) of data.
func Checksum(data []byte) uint32 {
	hash := crc.NewHashWithTable(crcTable)
	hash.Write(data)
	return hash.CRC32()
}
