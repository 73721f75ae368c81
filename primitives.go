//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package primitives implements Merkle-Damgard hash functions, HMAC,
// block padding schemes, and block cipher modes of operation.
//
// The package is a thin facade over the digest, hmac, padding, and
// modes packages. All functions are pure and safe for concurrent use.
package primitives

import (
	"fmt"
	"strings"

	"github.com/markkurossi/primitives/digest"
	"github.com/markkurossi/primitives/hmac"
	"github.com/markkurossi/primitives/modes"
	"github.com/markkurossi/primitives/padding"
)

// Algorithm specifies a block cipher family and its mode of
// operation.
type Algorithm struct {
	Family *modes.Family
	Mode   modes.Mode
}

func (alg Algorithm) String() string {
	if alg.Family == nil {
		return fmt.Sprintf("{nil}-%s", alg.Mode)
	}
	return fmt.Sprintf("%s-%s", alg.Family, alg.Mode)
}

// BlockSize returns the algorithm's block size in bytes.
func (alg Algorithm) BlockSize() int {
	if alg.Family == nil {
		return 0
	}
	return alg.Family.BlockSize
}

// IVSize returns the required IV length in bytes. The ECB mode does
// not use an IV.
func (alg Algorithm) IVSize() int {
	if !alg.Mode.NeedsIV() {
		return 0
	}
	return alg.BlockSize()
}

// ParseAlgorithm parses the algorithm tag of the form family-mode,
// for example "aes-cbc" or "des3-ofb".
func ParseAlgorithm(tag string) (Algorithm, error) {
	idx := strings.LastIndexByte(tag, '-')
	if idx <= 0 {
		return Algorithm{}, fmt.Errorf("invalid algorithm '%s'", tag)
	}
	f, err := modes.ParseFamily(tag[:idx])
	if err != nil {
		return Algorithm{}, err
	}
	m, err := modes.ParseMode(tag[idx+1:])
	if err != nil {
		return Algorithm{}, err
	}
	if !f.Supports(m) {
		return Algorithm{}, fmt.Errorf("%w: %s",
			modes.ErrorUnsupportedCombination, tag)
	}
	return Algorithm{
		Family: f,
		Mode:   m,
	}, nil
}

// Algorithms returns all supported family and mode combinations.
func Algorithms() []Algorithm {
	var result []Algorithm
	for _, f := range modes.Families() {
		for _, m := range f.Modes {
			result = append(result, Algorithm{
				Family: f,
				Mode:   m,
			})
		}
	}
	return result
}

// Hash computes the message digest of msg with the hash variant v.
func Hash(v digest.Variant, msg []byte) []byte {
	return v.Sum(msg)
}

// HMAC computes the HMAC of msg under key with the hash variant v.
func HMAC(v digest.Variant, key, msg []byte) []byte {
	return hmac.Sum(v, key, msg)
}

// Encrypt encrypts plaintext with the algorithm. The ECB and CBC
// modes require block aligned plaintext; use PKCS7Pad to pad it.
func Encrypt(alg Algorithm, key, iv, plaintext []byte) ([]byte, error) {
	return modes.Encrypt(alg.Family, alg.Mode, key, iv, plaintext)
}

// Decrypt decrypts ciphertext with the algorithm.
func Decrypt(alg Algorithm, key, iv, ciphertext []byte) ([]byte, error) {
	return modes.Decrypt(alg.Family, alg.Mode, key, iv, ciphertext)
}

// PKCS7Pad pads data to a multiple of blockSize. The blockSize must
// be in the range 1..255.
func PKCS7Pad(data []byte, blockSize int) ([]byte, error) {
	return padding.PKCS7Pad(data, blockSize)
}

// PKCS7Unpad removes the PKCS#7 padding. Only the last byte is
// checked; use padding.PKCS7UnpadStrict to verify all padding bytes.
func PKCS7Unpad(data []byte) ([]byte, error) {
	return padding.PKCS7Unpad(data)
}
