//
// cfb.go
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

// EncryptCFB encrypts src in the full block cipher feedback mode. The
// ciphertext segment feeds the next block cipher input. A final
// partial segment is XORed with the leading bytes of the keystream
// block. Only the cipher's encrypt direction is used.
func EncryptCFB(b cipher.Block, iv, src []byte) []byte {
	bs := b.BlockSize()
	dst := make([]byte, len(src))
	feedback := make([]byte, bs)
	copy(feedback, iv)

	for i := 0; i < len(src); i += bs {
		b.Encrypt(feedback, feedback)
		end := min(i+bs, len(src))
		subtle.XORBytes(dst[i:end], src[i:end], feedback)
		copy(feedback, dst[i:end])
	}
	return dst
}

// DecryptCFB decrypts src in the full block cipher feedback mode. The
// input ciphertext segment feeds the next block cipher input.
func DecryptCFB(b cipher.Block, iv, src []byte) []byte {
	bs := b.BlockSize()
	dst := make([]byte, len(src))
	feedback := make([]byte, bs)
	copy(feedback, iv)

	for i := 0; i < len(src); i += bs {
		b.Encrypt(feedback, feedback)
		end := min(i+bs, len(src))
		subtle.XORBytes(dst[i:end], src[i:end], feedback)
		copy(feedback, src[i:end])
	}
	return dst
}
