//
// words.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md

import (
	"encoding/binary"
)

// Words32 unpacks len(dst) 32-bit words from data using the byte
// order.
func Words32(dst []uint32, data []byte, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = order.Uint32(data[i*4:])
	}
}

// Words64 unpacks len(dst) 64-bit words from data using the byte
// order.
func Words64(dst []uint64, data []byte, order binary.ByteOrder) {
	for i := range dst {
		dst[i] = order.Uint64(data[i*8:])
	}
}

// Put32 packs the 32-bit words into dst using the byte order.
func Put32(dst []byte, words []uint32, order binary.ByteOrder) {
	for i, w := range words {
		order.PutUint32(dst[i*4:], w)
	}
}

// Put64 packs the 64-bit words into dst using the byte order.
func Put64(dst []byte, words []uint64, order binary.ByteOrder) {
	for i, w := range words {
		order.PutUint64(dst[i*8:], w)
	}
}
