//
// family.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
	"golang.org/x/crypto/twofish"
	"golang.org/x/crypto/xtea"
)

// Family describes a block cipher whose single block transforms the
// mode engine drives. The key schedule belongs to the cipher
// implementation.
type Family struct {
	// Name is the family name used in algorithm tags.
	Name string
	// BlockSize is the cipher's native block size in bytes.
	BlockSize int
	// KeySizes lists the valid key sizes in bytes.
	KeySizes []int
	// Modes lists the supported modes of operation.
	Modes []Mode

	newCipher func(key []byte) (cipher.Block, error)
}

var (
	allModes    = []Mode{ECB, CBC, CFB, OFB, CTR}
	noCounter   = []Mode{ECB, CBC, CFB, OFB}
	aesKeySizes = []int{16, 24, 32}
)

// Block cipher families. The 64-bit block families define no counter
// width and do not support the CTR mode.
var (
	AES = &Family{
		Name:      "aes",
		BlockSize: aes.BlockSize,
		KeySizes:  aesKeySizes,
		Modes:     allModes,
		newCipher: aes.NewCipher,
	}
	Twofish = &Family{
		Name:      "twofish",
		BlockSize: twofish.BlockSize,
		KeySizes:  aesKeySizes,
		Modes:     allModes,
		newCipher: func(key []byte) (cipher.Block, error) {
			c, err := twofish.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
	DES = &Family{
		Name:      "des",
		BlockSize: des.BlockSize,
		KeySizes:  []int{8},
		Modes:     noCounter,
		newCipher: des.NewCipher,
	}
	TripleDES = &Family{
		Name:      "des3",
		BlockSize: des.BlockSize,
		KeySizes:  []int{24},
		Modes:     noCounter,
		newCipher: des.NewTripleDESCipher,
	}
	Blowfish = &Family{
		Name:      "blowfish",
		BlockSize: blowfish.BlockSize,
		KeySizes:  keyRange(1, 56),
		Modes:     noCounter,
		newCipher: func(key []byte) (cipher.Block, error) {
			c, err := blowfish.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
	CAST5 = &Family{
		Name:      "cast5",
		BlockSize: cast5.BlockSize,
		KeySizes:  []int{cast5.KeySize},
		Modes:     noCounter,
		newCipher: func(key []byte) (cipher.Block, error) {
			c, err := cast5.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
	XTEA = &Family{
		Name:      "xtea",
		BlockSize: xtea.BlockSize,
		KeySizes:  []int{16},
		Modes:     noCounter,
		newCipher: func(key []byte) (cipher.Block, error) {
			c, err := xtea.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
)

var families = []*Family{
	AES, Twofish, DES, TripleDES, Blowfish, CAST5, XTEA,
}

func keyRange(from, to int) []int {
	var result []int
	for i := from; i <= to; i++ {
		result = append(result, i)
	}
	return result
}

// Families returns all block cipher families.
func Families() []*Family {
	return slices.Clone(families)
}

// ParseFamily parses the block cipher family name. The names "3des"
// and "tripledes" are accepted for TripleDES.
func ParseFamily(name string) (*Family, error) {
	n := strings.ToLower(name)
	switch n {
	case "3des", "tripledes", "des-ede3":
		return TripleDES, nil
	}
	for _, f := range families {
		if f.Name == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown block cipher '%s'", name)
}

func (f *Family) String() string {
	return f.Name
}

// ValidKeySize tests if the key size n is valid for the family.
func (f *Family) ValidKeySize(n int) bool {
	return slices.Contains(f.KeySizes, n)
}

// Supports tests if the family supports the mode of operation.
func (f *Family) Supports(m Mode) bool {
	return slices.Contains(f.Modes, m)
}

// CounterBits returns the width of the CTR mode counter in bits or 0
// if the family does not support the CTR mode.
func (f *Family) CounterBits() int {
	if !f.Supports(CTR) {
		return 0
	}
	return f.BlockSize * 8
}

// NewCipher creates a new block cipher instance with the key.
func (f *Family) NewCipher(key []byte) (cipher.Block, error) {
	if !f.ValidKeySize(len(key)) {
		return nil, fmt.Errorf("%w: %s key length %d",
			ErrorInvalidKeySize, f.Name, len(key))
	}
	return f.newCipher(key)
}
