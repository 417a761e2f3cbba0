//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInputTooLarge is returned for messages whose bit length does not
// fit into the 64-bit length field of the padding.
var ErrInputTooLarge = errors.New("sha256: input too large")

// checkLength verifies that a message of size bytes can be padded.
func checkLength(size uint64) error {
	if size >= maxMessageBytes {
		return fmt.Errorf("%w: %d bytes", ErrInputTooLarge, size)
	}
	return nil
}

// paddedLen returns the length of the padded message for a message of
// size bytes. The result is a multiple of BlockSize and at least
// size+9.
func paddedLen(size uint64) uint64 {
	var t uint64
	if size%BlockSize < BlockSize-lengthBytes {
		t = BlockSize - lengthBytes - size%BlockSize
	} else {
		t = BlockSize + BlockSize - lengthBytes - size%BlockSize
	}
	return size + t + lengthBytes
}

// Pad returns the padded message: the message followed by a single
// set bit, zero bits until the length is 56 bytes modulo 64, and the
// message length in bits as a big-endian 64-bit integer. The input
// slice is not modified.
func Pad(message []byte) ([]byte, error) {
	length := uint64(len(message))
	if err := checkLength(length); err != nil {
		return nil, err
	}

	padded := make([]byte, paddedLen(length))
	copy(padded, message)
	padded[length] = delimiter

	// The zero fill is already in place.
	binary.BigEndian.PutUint64(padded[len(padded)-lengthBytes:], length<<3)

	return padded, nil
}
