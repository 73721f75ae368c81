//
// hmac.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package hmac implements the keyed-hash message authentication code
// (HMAC) as defined in FIPS 198-1 and RFC 2104 over the digest
// package hash functions.
package hmac

import (
	"crypto/subtle"

	"github.com/markkurossi/primitives/digest"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// MAC computes HMAC tags with a hash function.
type MAC struct {
	h digest.Hasher
}

// New creates a new MAC for the hash function h.
func New(h digest.Hasher) *MAC {
	return &MAC{
		h: h,
	}
}

// Size returns the tag size in bytes.
func (m *MAC) Size() int {
	return m.h.Size()
}

// BlockSize returns the block size of the underlying hash function.
func (m *MAC) BlockSize() int {
	return m.h.BlockSize()
}

// Key derives the block sized key K0 from key. Keys longer than the
// block size are hashed first. The result is zero padded to the block
// size.
func (m *MAC) Key(key []byte) []byte {
	k0 := make([]byte, m.h.BlockSize())
	if len(key) > len(k0) {
		copy(k0, m.h.Sum(key))
	} else {
		copy(k0, key)
	}
	return k0
}

// Sum computes the HMAC tag of msg with key:
//
//	H((K0 ^ opad) || H((K0 ^ ipad) || msg))
func (m *MAC) Sum(key, msg []byte) []byte {
	k0 := m.Key(key)
	bs := len(k0)

	buf := make([]byte, bs+len(msg))
	for i, b := range k0 {
		buf[i] = b ^ ipad
	}
	copy(buf[bs:], msg)
	inner := m.h.Sum(buf)

	buf = append(buf[:bs], inner...)
	for i, b := range k0 {
		buf[i] = b ^ opad
	}
	return m.h.Sum(buf)
}

// Sum computes the HMAC tag of msg with key using the hash variant v.
func Sum(v digest.Variant, key, msg []byte) []byte {
	return New(v.New()).Sum(key, msg)
}

// Equal compares two tags in constant time.
func Equal(tag1, tag2 []byte) bool {
	return subtle.ConstantTimeCompare(tag1, tag2) == 1
}
