//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// State is the eight-word hash value. After all blocks have been
// compressed it is the digest.
type State [8]uint32

// InitialState returns the initial hash value H(0).
func InitialState() State {
	return State{init0, init1, init2, init3, init4, init5, init6, init7}
}

// Bytes returns the big-endian byte encoding of the state.
func (s State) Bytes() [Size]byte {
	var digest [Size]byte
	for i, w := range s {
		binary.BigEndian.PutUint32(digest[i*4:], w)
	}
	return digest
}

// String returns the state as lowercase hexadecimal. Every word is
// rendered with exactly eight digits.
func (s State) String() string {
	digest := s.Bytes()
	return hex.EncodeToString(digest[:])
}

// Hash computes the SHA-256 hash value of the message.
func Hash(message []byte) (State, error) {
	return Trace(message, nil)
}

// Trace computes the hash value like Hash and calls fn with the
// intermediate hash value H(i) after each block has been compressed.
// The block numbers start from 1. The fn may be nil.
func Trace(message []byte, fn func(block int, state State)) (State, error) {
	padded, err := Pad(message)
	if err != nil {
		return State{}, err
	}
	state := InitialState()
	for idx, block := range ParseBlocks(padded) {
		state = Compress(state, block)
		if fn != nil {
			fn(idx+1, state)
		}
	}
	return state, nil
}

// Sum returns the SHA-256 checksum of the message.
func Sum(message []byte) ([Size]byte, error) {
	state, err := Hash(message)
	if err != nil {
		return [Size]byte{}, err
	}
	return state.Bytes(), nil
}

// DigestHex returns the SHA-256 checksum of the message as 64
// lowercase hexadecimal digits.
func DigestHex(message []byte) (string, error) {
	state, err := Hash(message)
	if err != nil {
		return "", err
	}
	return state.String(), nil
}

// DigestHexString returns the SHA-256 checksum of the UTF-8 encoding
// of message as 64 lowercase hexadecimal digits.
func DigestHexString(message string) (string, error) {
	return DigestHex([]byte(message))
}

// Hasher computes SHA-256 hashes. It has no internal state, and the
// zero value and copies of it are ready to use from any number of
// goroutines.
type Hasher struct{}

// New creates a new Hasher.
func New() Hasher {
	return Hasher{}
}

// Pad pads the message. See the package function Pad.
func (Hasher) Pad(message []byte) ([]byte, error) {
	return Pad(message)
}

// ParseBlocks parses the padded message into blocks. See the package
// function ParseBlocks.
func (Hasher) ParseBlocks(padded []byte) []Block {
	return ParseBlocks(padded)
}

// Hash computes the hash value of the message.
func (Hasher) Hash(message []byte) (State, error) {
	return Hash(message)
}

// Sum returns the checksum of the message.
func (Hasher) Sum(message []byte) ([Size]byte, error) {
	return Sum(message)
}

// DigestHex returns the checksum of the message in hexadecimal.
func (Hasher) DigestHex(message []byte) (string, error) {
	return DigestHex(message)
}

// DigestHexString returns the checksum of the string in hexadecimal.
func (Hasher) DigestHexString(message string) (string, error) {
	return DigestHexString(message)
}
