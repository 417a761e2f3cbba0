//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

// Schedule is the message schedule W of one block.
type Schedule [ScheduleSize]uint32

// Expand expands the block into its message schedule. The first 16
// words are the block words and the rest are computed in ascending
// order from the earlier words.
func Expand(block Block) Schedule {
	var w Schedule

	copy(w[:WordCount], block[:])
	for t := WordCount; t < ScheduleSize; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}
	return w
}

// Compress runs the 64 compression rounds over block and returns the
// next intermediate hash value. Blocks must be compressed in message
// order, each call taking the state returned by the previous one.
func Compress(state State, block Block) State {
	w := Expand(block)

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3],
		state[4], state[5], state[6], state[7]

	for t := 0; t < ScheduleSize; t++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + _K[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return State{
		state[0] + a,
		state[1] + b,
		state[2] + c,
		state[3] + d,
		state[4] + e,
		state[5] + f,
		state[6] + g,
		state[7] + h,
	}
}
