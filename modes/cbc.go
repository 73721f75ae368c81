//
// cbc.go
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

// EncryptCBC encrypts src in the cipher block chaining mode:
//
//	C[i] = E(K, P[i] ^ C[i-1]), C[-1] = IV
//
// The length of src must be a multiple of the block size and the
// length of iv must equal the block size.
func EncryptCBC(b cipher.Block, iv, src []byte) []byte {
	bs := b.BlockSize()
	dst := make([]byte, len(src))

	prev := iv
	for i := 0; i < len(src); i += bs {
		block := dst[i : i+bs]
		subtle.XORBytes(block, src[i:i+bs], prev)
		b.Encrypt(block, block)
		prev = block
	}
	return dst
}

// DecryptCBC decrypts src in the cipher block chaining mode:
//
//	P[i] = D(K, C[i]) ^ C[i-1], C[-1] = IV
func DecryptCBC(b cipher.Block, iv, src []byte) []byte {
	bs := b.BlockSize()
	dst := make([]byte, len(src))

	prev := iv
	for i := 0; i < len(src); i += bs {
		block := dst[i : i+bs]
		b.Decrypt(block, src[i:i+bs])
		subtle.XORBytes(block, block, prev)
		prev = src[i : i+bs]
	}
	return dst
}
