// Package words groups raw bytes into fixed-width words and renders
// them as hexadecimal tokens.
package words

import (
	"math/big"
	"slices"

	"github.com/I-Am-Dench/binwords/seq"
)

type ByteOrder string

const (
	BigEndian    ByteOrder = "big"
	LittleEndian ByteOrder = "little"
)

func (order ByteOrder) Valid() bool {
	return order == BigEndian || order == LittleEndian
}

// Splits data into consecutive groups of width bytes. The final group is
// zero-padded. With [LittleEndian] the bytes within each group are
// reversed.
func ConvertBytes(data []byte, width int, order ByteOrder) ([][]byte, error) {
	if !order.Valid() {
		return nil, &ArgumentError{
			Name:     "byteorder",
			Value:    order,
			Expected: `"big" or "little"`,
		}
	}

	if width < 1 {
		return nil, &ArgumentError{
			Name:     "bytewidth",
			Value:    width,
			Expected: "a positive integer",
		}
	}

	groups := make([][]byte, 0, (len(data)+width-1)/width)
	for group := range seq.Groupwise(slices.Values(data), width, 0) {
		if order == LittleEndian {
			slices.Reverse(group)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// Hex formats group as a big-endian unsigned integer: "0x" followed by
// lowercase digits without leading zeros.
func Hex(group []byte) string {
	return "0x" + new(big.Int).SetBytes(group).Text(16)
}

// Returns one [Hex] token per big-endian group of width bytes.
func PrettyBytes(data []byte, width int) ([]string, error) {
	groups, err := ConvertBytes(data, width, BigEndian)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq.Map(slices.Values(groups), Hex)), nil
}
