//
// ofb.go
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

// OFBXOR encrypts or decrypts src in the output feedback mode. The
// keystream block feeds the next block cipher input so the keystream
// does not depend on the data. A final partial segment is XORed with
// the leading bytes of the keystream block.
func OFBXOR(b cipher.Block, iv, src []byte) []byte {
	bs := b.BlockSize()
	dst := make([]byte, len(src))
	keystream := make([]byte, bs)
	copy(keystream, iv)

	for i := 0; i < len(src); i += bs {
		b.Encrypt(keystream, keystream)
		end := min(i+bs, len(src))
		subtle.XORBytes(dst[i:end], src[i:end], keystream)
	}
	return dst
}
