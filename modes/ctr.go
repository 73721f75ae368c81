//
// ctr.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/cipher"
	"crypto/subtle"
)

// CTRXOR encrypts or decrypts src in the counter mode. The iv is the
// initial counter block, interpreted as a big-endian integer that is
// incremented by one for each block and wraps modulo 2^(8*len(iv)).
func CTRXOR(b cipher.Block, iv, src []byte) []byte {
	dst := make([]byte, len(src))
	ctrXOR(b, iv, dst, src)
	return dst
}

// ctrXOR XORs src with the keystream starting from the counter block
// iv. The iv is not modified.
func ctrXOR(b cipher.Block, iv, dst, src []byte) {
	bs := b.BlockSize()
	counter := make([]byte, bs)
	copy(counter, iv)
	keystream := make([]byte, bs)

	for i := 0; i < len(src); i += bs {
		b.Encrypt(keystream, counter)
		end := min(i+bs, len(src))
		subtle.XORBytes(dst[i:end], src[i:end], keystream)
		incCounter(counter)
	}
}

// incCounter increments the big-endian counter by one.
func incCounter(counter []byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}

// addCounter adds n to the big-endian counter.
func addCounter(counter []byte, n uint64) {
	carry := n
	for i := len(counter) - 1; i >= 0 && carry != 0; i-- {
		sum := uint64(counter[i]) + carry&0xff
		counter[i] = byte(sum)
		carry = carry>>8 + sum>>8
	}
}
