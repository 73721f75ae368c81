//
// pad.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md implements the Merkle–Damgård message padding and the
// word packing routines shared by the hash engines.
package md

import (
	"encoding/binary"
)

// Params define the padding parameters of a hash function.
type Params struct {
	// BlockSize is the compression function block size in bytes.
	BlockSize int
	// LengthSize is the size of the message length field in bytes.
	LengthSize int
	// Order is the byte order of the message length field.
	Order binary.ByteOrder
}

// Padding parameters of the supported hash families.
var (
	MD5 = Params{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.LittleEndian,
	}
	SHA32 = Params{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.BigEndian,
	}
	SHA64 = Params{
		BlockSize:  128,
		LengthSize: 16,
		Order:      binary.BigEndian,
	}
)

// PadLen returns the number of padding bytes, including the 0x80
// marker and the length field, appended to a message of n bytes.
func PadLen(n uint64, p Params) int {
	bs := uint64(p.BlockSize)
	used := (n + 1 + uint64(p.LengthSize)) % bs
	var zeros uint64
	if used != 0 {
		zeros = bs - used
	}
	return 1 + int(zeros) + p.LengthSize
}

// Trailer returns the padding appended to a message of n bytes: a
// single 1 bit, the minimum number of 0 bits, and the message bit
// length encoded in p.LengthSize bytes with p.Order.
func Trailer(n uint64, p Params) []byte {
	trailer := make([]byte, PadLen(n, p))
	trailer[0] = 0x80

	// Bit length as a 128-bit value hi:lo.
	lo := n << 3
	hi := n >> 61

	field := trailer[len(trailer)-p.LengthSize:]
	switch p.LengthSize {
	case 8:
		p.Order.PutUint64(field, lo)

	case 16:
		if p.Order == binary.LittleEndian {
			p.Order.PutUint64(field[0:], lo)
			p.Order.PutUint64(field[8:], hi)
		} else {
			p.Order.PutUint64(field[0:], hi)
			p.Order.PutUint64(field[8:], lo)
		}

	default:
		panic("md: unsupported length field size")
	}
	return trailer
}

// Pad returns a copy of msg with the Merkle–Damgård padding
// appended. The result length is a multiple of p.BlockSize.
func Pad(msg []byte, p Params) []byte {
	trailer := Trailer(uint64(len(msg)), p)

	result := make([]byte, 0, len(msg)+len(trailer))
	result = append(result, msg...)
	return append(result, trailer...)
}

// Tail returns the final padded block(s) of a message of n bytes whose
// unprocessed remainder is rest. The length of rest must be smaller
// than p.BlockSize. The result is one or two blocks long.
func Tail(rest []byte, n uint64, p Params) []byte {
	result := make([]byte, 0, 2*p.BlockSize)
	result = append(result, rest...)
	return append(result, Trailer(n, p)...)
}
