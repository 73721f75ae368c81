//
// sha1.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//
// SHA-1 hash algorithm, FIPS 180-4 and RFC 3174.

package digest

import (
	"encoding/binary"
	"math/bits"

	"github.com/markkurossi/primitives/md"
)

var sha1Init = [5]uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
}

const (
	_K0 = 0x5a827999
	_K1 = 0x6ed9eba1
	_K2 = 0x8f1bbcdc
	_K3 = 0xca62c1d6
)

func blockSHA1(h []uint32, p []byte) {
	var w [80]uint32
	md.Words32(w[:16], p, binary.BigEndian)
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = b&c | (^b)&d
			k = _K0
		case i < 40:
			f = b ^ c ^ d
			k = _K1
		case i < 60:
			f = ((b | c) & d) | (b & c)
			k = _K2
		default:
			f = b ^ c ^ d
			k = _K3
		}
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + k
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
