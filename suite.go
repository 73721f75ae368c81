//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package primitives

import (
	"fmt"
	"io"

	"github.com/markkurossi/primitives/env"
	"github.com/markkurossi/primitives/modes"
	"github.com/markkurossi/primitives/padding"
)

// Suite runs the cipher operations with a configuration.
type Suite struct {
	config *env.Config
	engine *modes.Engine
}

// NewSuite creates a new suite with the configuration. The config
// may be nil.
func NewSuite(config *env.Config) *Suite {
	return &Suite{
		config: config,
		engine: modes.NewEngine(config),
	}
}

// Encrypt encrypts plaintext with the algorithm.
func (s *Suite) Encrypt(alg Algorithm, key, iv, plaintext []byte) (
	[]byte, error) {
	return s.engine.Encrypt(alg.Family, alg.Mode, key, iv, plaintext)
}

// Decrypt decrypts ciphertext with the algorithm.
func (s *Suite) Decrypt(alg Algorithm, key, iv, ciphertext []byte) (
	[]byte, error) {
	return s.engine.Decrypt(alg.Family, alg.Mode, key, iv, ciphertext)
}

// Seal pads plaintext with the padding scheme and encrypts it with
// the algorithm. Stream modes are encrypted without padding.
func (s *Suite) Seal(alg Algorithm, scheme padding.Scheme,
	key, iv, plaintext []byte) ([]byte, error) {

	data := plaintext
	if !alg.Mode.Stream() {
		var err error
		data, err = scheme.Pad(plaintext, alg.BlockSize(), s.config)
		if err != nil {
			return nil, err
		}
	}
	return s.Encrypt(alg, key, iv, data)
}

// Open decrypts ciphertext with the algorithm and removes the padding
// Seal added.
func (s *Suite) Open(alg Algorithm, scheme padding.Scheme,
	key, iv, ciphertext []byte) ([]byte, error) {

	data, err := s.Decrypt(alg, key, iv, ciphertext)
	if err != nil {
		return nil, err
	}
	if alg.Mode.Stream() {
		return data, nil
	}
	return scheme.Unpad(data, alg.BlockSize())
}

// NewKey creates a random key of size bytes for the algorithm. If
// size is 0, the family's largest key size is used.
func (s *Suite) NewKey(alg Algorithm, size int) ([]byte, error) {
	if alg.Family == nil {
		return nil, fmt.Errorf("%w: no cipher family",
			modes.ErrorUnsupportedCombination)
	}
	if size == 0 {
		size = alg.Family.KeySizes[len(alg.Family.KeySizes)-1]
	}
	if !alg.Family.ValidKeySize(size) {
		return nil, fmt.Errorf("%w: %s key length %d",
			modes.ErrorInvalidKeySize, alg.Family, size)
	}
	return s.random(size)
}

// NewIV creates a random IV for the algorithm. It returns nil for the
// ECB mode.
func (s *Suite) NewIV(alg Algorithm) ([]byte, error) {
	size := alg.IVSize()
	if size == 0 {
		return nil, nil
	}
	return s.random(size)
}

func (s *Suite) random(size int) ([]byte, error) {
	buf := make([]byte, size)
	_, err := io.ReadFull(s.config.GetRandom(), buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
