//
// hasher.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package digest

import (
	"hash"
)

type hashAdapter struct {
	constructor func() hash.Hash
	size        int
	blockSize   int
}

// FromHash returns a Hasher computing digests with hash.Hash
// instances created by the constructor. Each Sum call uses a fresh
// instance so the Hasher is safe for concurrent use.
func FromHash(constructor func() hash.Hash) Hasher {
	h := constructor()
	return &hashAdapter{
		constructor: constructor,
		size:        h.Size(),
		blockSize:   h.BlockSize(),
	}
}

func (a *hashAdapter) Size() int {
	return a.size
}

func (a *hashAdapter) BlockSize() int {
	return a.blockSize
}

func (a *hashAdapter) Sum(msg []byte) []byte {
	h := a.constructor()
	h.Write(msg)
	return h.Sum(nil)
}
