//
// digest.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package digest implements the MD5, SHA-1, SHA-224, SHA-256,
// SHA-384, and SHA-512 Merkle–Damgård hash functions. All functions
// operate on complete messages and keep no state between calls.
package digest

import (
	"fmt"
	"strings"

	"github.com/markkurossi/primitives/md"
)

// Hasher computes message digests. It is implemented by Variant and
// by the adapters returned by FromHash.
type Hasher interface {
	// Size returns the digest size in bytes.
	Size() int
	// BlockSize returns the compression function block size in
	// bytes.
	BlockSize() int
	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
}

// Variant identifies a hash algorithm.
type Variant int

// Supported hash algorithms.
const (
	MD5 Variant = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
)

// params define the constant table of a hash variant.
type params struct {
	name   string
	size   int
	pad    md.Params
	init32 []uint32
	init64 []uint64
	block  func(h []uint32, p []byte)
}

var variants = [...]params{
	MD5: {
		name:   "md5",
		size:   16,
		pad:    md.MD5,
		init32: md5Init[:],
		block:  blockMD5,
	},
	SHA1: {
		name:   "sha1",
		size:   20,
		pad:    md.SHA32,
		init32: sha1Init[:],
		block:  blockSHA1,
	},
	SHA224: {
		name:   "sha224",
		size:   28,
		pad:    md.SHA32,
		init32: sha224Init[:],
		block:  blockSHA256,
	},
	SHA256: {
		name:   "sha256",
		size:   32,
		pad:    md.SHA32,
		init32: sha256Init[:],
		block:  blockSHA256,
	},
	SHA384: {
		name:   "sha384",
		size:   48,
		pad:    md.SHA64,
		init64: sha384Init[:],
	},
	SHA512: {
		name:   "sha512",
		size:   64,
		pad:    md.SHA64,
		init64: sha512Init[:],
	},
}

func (v Variant) params() *params {
	if v < 0 || int(v) >= len(variants) {
		panic(fmt.Sprintf("digest: unknown variant %d", int(v)))
	}
	return &variants[v]
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variants) {
		return fmt.Sprintf("{Variant %d}", int(v))
	}
	return variants[v].name
}

// New returns a Hasher for the hash variant. It panics if v is not
// a supported variant.
func (v Variant) New() Hasher {
	v.params()
	return v
}

// Size returns the digest size in bytes.
func (v Variant) Size() int {
	return v.params().size
}

// BlockSize returns the block size in bytes.
func (v Variant) BlockSize() int {
	return v.params().pad.BlockSize
}

// Sum returns the digest of msg.
func (v Variant) Sum(msg []byte) []byte {
	p := v.params()
	if p.init64 != nil {
		return sum64(p, msg)
	}
	return sum32(p, msg)
}

// Sum returns the digest of msg computed with the hash variant v.
func Sum(v Variant, msg []byte) []byte {
	return v.Sum(msg)
}

// Variants returns all supported hash variants.
func Variants() []Variant {
	result := make([]Variant, len(variants))
	for i := range variants {
		result[i] = Variant(i)
	}
	return result
}

// ParseVariant parses the hash variant name. The name is case
// insensitive and may contain a dash, for example "SHA-256".
func ParseVariant(name string) (Variant, error) {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")
	for i, p := range variants {
		if p.name == n {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("digest: unknown hash variant '%s'", name)
}

func sum32(p *params, msg []byte) []byte {
	h := make([]uint32, len(p.init32))
	copy(h, p.init32)

	n := uint64(len(msg))
	bs := p.pad.BlockSize

	for len(msg) >= bs {
		p.block(h, msg[:bs])
		msg = msg[bs:]
	}
	for tail := md.Tail(msg, n, p.pad); len(tail) > 0; tail = tail[bs:] {
		p.block(h, tail[:bs])
	}

	result := make([]byte, p.size)
	md.Put32(result, h[:p.size/4], p.pad.Order)
	return result
}

func sum64(p *params, msg []byte) []byte {
	var h [8]uint64
	copy(h[:], p.init64)

	n := uint64(len(msg))
	bs := p.pad.BlockSize

	for len(msg) >= bs {
		blockSHA512(&h, msg[:bs])
		msg = msg[bs:]
	}
	for tail := md.Tail(msg, n, p.pad); len(tail) > 0; tail = tail[bs:] {
		blockSHA512(&h, tail[:bs])
	}

	result := make([]byte, p.size)
	md.Put64(result, h[:p.size/8], p.pad.Order)
	return result
}
