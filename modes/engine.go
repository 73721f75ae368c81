//
// engine.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package modes implements the ECB, CBC, CFB, OFB, and CTR block
// cipher modes of operation (NIST SP 800-38A) over single block
// cipher transforms.
//
// The ECB and CBC modes require input that is a non-empty multiple of
// the block size and perform no implicit padding; see the padding
// package. The CFB, OFB, and CTR modes accept input of any length.
package modes

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/markkurossi/primitives/env"
)

var (
	// ErrorInvalidKeySize is returned if the key length is not valid
	// for the block cipher family.
	ErrorInvalidKeySize = errors.New("invalid key size")

	// ErrorInvalidIVSize is returned if the IV length does not equal
	// the cipher's block size.
	ErrorInvalidIVSize = errors.New("invalid IV size")

	// ErrorInvalidBlockAlignment is returned if the ECB or CBC input
	// is empty or its length is not a multiple of the block size.
	ErrorInvalidBlockAlignment = errors.New("invalid block alignment")

	// ErrorUnsupportedCombination is returned if the block cipher
	// family does not define the mode of operation.
	ErrorUnsupportedCombination = errors.New(
		"unsupported cipher and mode combination")
)

// Engine runs block cipher modes of operation. Engine is safe for
// concurrent use.
type Engine struct {
	config *env.Config
}

// NewEngine creates a new mode engine with the configuration. The
// config may be nil in which case defaults are used.
func NewEngine(config *env.Config) *Engine {
	return &Engine{
		config: config,
	}
}

var defaultEngine = NewEngine(nil)

// Encrypt encrypts data with the block cipher family f in the mode m
// using the default engine.
func Encrypt(f *Family, m Mode, key, iv, data []byte) ([]byte, error) {
	return defaultEngine.Encrypt(f, m, key, iv, data)
}

// Decrypt decrypts data with the block cipher family f in the mode m
// using the default engine.
func Decrypt(f *Family, m Mode, key, iv, data []byte) ([]byte, error) {
	return defaultEngine.Decrypt(f, m, key, iv, data)
}

// Validate checks the family, mode, key, IV, and data length
// combination. The IV is ignored in the ECB mode.
func Validate(f *Family, m Mode, key, iv []byte, dataLen int) error {
	if f == nil {
		return fmt.Errorf("%w: no cipher family", ErrorUnsupportedCombination)
	}
	if !f.Supports(m) {
		return fmt.Errorf("%w: %s-%s", ErrorUnsupportedCombination, f, m)
	}
	if !f.ValidKeySize(len(key)) {
		return fmt.Errorf("%w: %s key length %d",
			ErrorInvalidKeySize, f, len(key))
	}
	if m.NeedsIV() && len(iv) != f.BlockSize {
		return fmt.Errorf("%w: %s IV length %d, expected %d",
			ErrorInvalidIVSize, f, len(iv), f.BlockSize)
	}
	if !m.Stream() && (dataLen == 0 || dataLen%f.BlockSize != 0) {
		return fmt.Errorf("%w: %s-%s input length %d",
			ErrorInvalidBlockAlignment, f, m, dataLen)
	}
	return nil
}

// Encrypt encrypts data with the block cipher family f in the mode
// m. All arguments are validated before any block is processed.
func (e *Engine) Encrypt(f *Family, m Mode, key, iv, data []byte) (
	[]byte, error) {

	b, err := e.prepare(f, m, key, iv, data)
	if err != nil {
		return nil, err
	}
	switch m {
	case ECB:
		if e.workers(b, len(data)) <= 1 {
			return EncryptECB(b, data), nil
		}
		dst := make([]byte, len(data))
		e.parallel(b, len(data), func(from, to int) {
			ecbEncrypt(b, dst[from:to], data[from:to])
		})
		return dst, nil

	case CBC:
		return EncryptCBC(b, iv, data), nil

	case CFB:
		return EncryptCFB(b, iv, data), nil

	case OFB:
		return OFBXOR(b, iv, data), nil

	case CTR:
		return e.ctr(b, iv, data), nil

	default:
		return nil, fmt.Errorf("%w: mode %s", ErrorUnsupportedCombination, m)
	}
}

// Decrypt decrypts data with the block cipher family f in the mode
// m. All arguments are validated before any block is processed.
func (e *Engine) Decrypt(f *Family, m Mode, key, iv, data []byte) (
	[]byte, error) {

	b, err := e.prepare(f, m, key, iv, data)
	if err != nil {
		return nil, err
	}
	switch m {
	case ECB:
		if e.workers(b, len(data)) <= 1 {
			return DecryptECB(b, data), nil
		}
		dst := make([]byte, len(data))
		e.parallel(b, len(data), func(from, to int) {
			ecbDecrypt(b, dst[from:to], data[from:to])
		})
		return dst, nil

	case CBC:
		return DecryptCBC(b, iv, data), nil

	case CFB:
		return DecryptCFB(b, iv, data), nil

	case OFB:
		return OFBXOR(b, iv, data), nil

	case CTR:
		return e.ctr(b, iv, data), nil

	default:
		return nil, fmt.Errorf("%w: mode %s", ErrorUnsupportedCombination, m)
	}
}

func (e *Engine) prepare(f *Family, m Mode, key, iv, data []byte) (
	cipher.Block, error) {

	err := Validate(f, m, key, iv, len(data))
	if err != nil {
		return nil, err
	}
	return f.NewCipher(key)
}

func (e *Engine) ctr(b cipher.Block, iv, data []byte) []byte {
	if e.workers(b, len(data)) <= 1 {
		return CTRXOR(b, iv, data)
	}
	bs := b.BlockSize()
	dst := make([]byte, len(data))
	e.parallel(b, len(data), func(from, to int) {
		counter := make([]byte, bs)
		copy(counter, iv)
		addCounter(counter, uint64(from/bs))
		ctrXOR(b, counter, dst[from:to], data[from:to])
	})
	return dst
}
