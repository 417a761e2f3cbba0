//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-2. The message is hashed in one shot: it is padded, parsed
// into 512-bit blocks, and each block is expanded into a 64-word
// message schedule that feeds the 64-round compression function.
//
// Each stage is exported so it can be inspected and tested on its
// own:
//
//	padded, err := sha256.Pad(message)
//	if err != nil {
//		log.Fatal(err)
//	}
//	state := sha256.InitialState()
//	for _, block := range sha256.ParseBlocks(padded) {
//		state = sha256.Compress(state, block)
//	}
//	fmt.Println(state)
//
// The same result is available with DigestHex, which renders the
// final state as 64 lowercase hexadecimal digits.
package sha256
