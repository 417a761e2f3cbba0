//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"fmt"
)

// Block is one 512-bit message block as sixteen big-endian words.
type Block [WordCount]uint32

// Bytes returns the big-endian byte encoding of the block.
func (b Block) Bytes() []byte {
	result := make([]byte, 0, BlockSize)
	for _, w := range b {
		result = binary.BigEndian.AppendUint32(result, w)
	}
	return result
}

// ParseBlocks parses the padded message into blocks. The length of
// padded must be a multiple of BlockSize; Pad guarantees this and any
// other length panics.
func ParseBlocks(padded []byte) []Block {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: padded length %d is not a multiple of %d",
			len(padded), BlockSize))
	}

	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		p := padded[i*BlockSize:]
		for j := 0; j < WordCount; j++ {
			blocks[i][j] = binary.BigEndian.Uint32(p[j*4:])
		}
	}
	return blocks
}
