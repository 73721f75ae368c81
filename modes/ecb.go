//
// ecb.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/cipher"
)

// EncryptECB encrypts src in the electronic codebook mode. The length
// of src must be a multiple of the block size.
func EncryptECB(b cipher.Block, src []byte) []byte {
	dst := make([]byte, len(src))
	ecbEncrypt(b, dst, src)
	return dst
}

// DecryptECB decrypts src in the electronic codebook mode. The length
// of src must be a multiple of the block size.
func DecryptECB(b cipher.Block, src []byte) []byte {
	dst := make([]byte, len(src))
	ecbDecrypt(b, dst, src)
	return dst
}

func ecbEncrypt(b cipher.Block, dst, src []byte) {
	bs := b.BlockSize()
	for i := 0; i < len(src); i += bs {
		b.Encrypt(dst[i:i+bs], src[i:i+bs])
	}
}

func ecbDecrypt(b cipher.Block, dst, src []byte) {
	bs := b.BlockSize()
	for i := 0; i < len(src); i += bs {
		b.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
}
