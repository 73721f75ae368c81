//
// padding.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// Block padding schemes: PKCS #7 (RFC 5652 section 6.3), ANSI X9.23,
// and ISO 10126.

// Package padding implements byte oriented block padding schemes.
package padding

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/primitives/env"
)

// Scheme specifies the block padding scheme.
type Scheme byte

// Padding schemes.
const (
	PKCS7 Scheme = iota
	ANSIX923
	ISO10126
)

var schemeNames = map[Scheme]string{
	PKCS7:    "pkcs7",
	ANSIX923: "ansix923",
	ISO10126: "iso10126",
}

func (s Scheme) String() string {
	name, ok := schemeNames[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{Scheme %d}", s)
}

// ParseScheme parses the padding scheme name.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ReplaceAll(strings.ToLower(name), "-", "")
	n = strings.ReplaceAll(n, ".", "")
	n = strings.ReplaceAll(n, "#", "")
	for s, sn := range schemeNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown padding scheme '%s'", name)
}

var (
	// ErrorInvalidPadding is returned if the padded data is
	// malformed.
	ErrorInvalidPadding = errors.New("invalid padding")

	// ErrorInvalidBlockSize is returned if the block size is not in
	// the range [1...255].
	ErrorInvalidBlockSize = errors.New("invalid block size")
)

// padLen returns the number of padding bytes for n bytes of data. The
// padding is always added, also when n is a multiple of blockSize.
func padLen(n, blockSize int) (int, error) {
	if blockSize < 1 || blockSize > 255 {
		return 0, fmt.Errorf("%w: %d", ErrorInvalidBlockSize, blockSize)
	}
	return blockSize - n%blockSize, nil
}

// Pad pads the data with the padding scheme. The entropy for the
// ISO10126 scheme is read from the config.
func (s Scheme) Pad(data []byte, blockSize int, config *env.Config) (
	[]byte, error) {

	switch s {
	case PKCS7:
		return PKCS7Pad(data, blockSize)
	case ANSIX923:
		return ANSIX923Pad(data, blockSize)
	case ISO10126:
		return ISO10126Pad(data, blockSize, config.GetRandom())
	default:
		return nil, fmt.Errorf("padding scheme %s not supported", s)
	}
}

// Unpad removes the padding scheme's padding from data. The PKCS7
// scheme is validated with PKCS7UnpadStrict.
func (s Scheme) Unpad(data []byte, blockSize int) ([]byte, error) {
	switch s {
	case PKCS7:
		return PKCS7UnpadStrict(data, blockSize)
	case ANSIX923:
		return ANSIX923Unpad(data, blockSize)
	case ISO10126:
		return ISO10126Unpad(data, blockSize)
	default:
		return nil, fmt.Errorf("padding scheme %s not supported", s)
	}
}

// PKCS7Pad appends n bytes of value n to a copy of data where n is
// blockSize - len(data) % blockSize. An aligned input gets a full
// block of padding.
func PKCS7Pad(data []byte, blockSize int) ([]byte, error) {
	n, err := padLen(len(data), blockSize)
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(data)+n)
	copy(result, data)
	for i := len(data); i < len(result); i++ {
		result[i] = byte(n)
	}
	return result, nil
}

// PKCS7Unpad removes the PKCS #7 padding from data. It reads the
// final byte n and drops the last n bytes. The other padding bytes
// are not inspected so a corrupted padding run goes undetected; use
// PKCS7UnpadStrict when the input is not trusted. The function fails
// only if the final byte cannot describe a padding run of data.
func PKCS7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrorInvalidPadding)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > len(data) {
		return nil, fmt.Errorf("%w: padding length %d", ErrorInvalidPadding, n)
	}
	return data[:len(data)-n], nil
}

// PKCS7UnpadStrict removes the PKCS #7 padding from data. The data
// length must be a multiple of blockSize and all padding bytes must
// equal the padding length.
func PKCS7UnpadStrict(data []byte, blockSize int) ([]byte, error) {
	n, err := checkPadded(data, blockSize)
	if err != nil {
		return nil, err
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent padding run",
				ErrorInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}

// ANSIX923Pad pads data with zero bytes followed by the padding
// length byte.
func ANSIX923Pad(data []byte, blockSize int) ([]byte, error) {
	n, err := padLen(len(data), blockSize)
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(data)+n)
	copy(result, data)
	result[len(result)-1] = byte(n)
	return result, nil
}

// ANSIX923Unpad removes the ANSI X9.23 padding from data.
func ANSIX923Unpad(data []byte, blockSize int) ([]byte, error) {
	n, err := checkPadded(data, blockSize)
	if err != nil {
		return nil, err
	}
	for _, b := range data[len(data)-n : len(data)-1] {
		if b != 0 {
			return nil, fmt.Errorf("%w: non-zero fill", ErrorInvalidPadding)
		}
	}
	return data[:len(data)-n], nil
}

// ISO10126Pad pads data with random bytes, read from rand, followed by
// the padding length byte.
func ISO10126Pad(data []byte, blockSize int, rand io.Reader) ([]byte, error) {
	n, err := padLen(len(data), blockSize)
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(data)+n)
	copy(result, data)
	_, err = io.ReadFull(rand, result[len(data):len(result)-1])
	if err != nil {
		return nil, err
	}
	result[len(result)-1] = byte(n)
	return result, nil
}

// ISO10126Unpad removes the ISO 10126 padding from data.
func ISO10126Unpad(data []byte, blockSize int) ([]byte, error) {
	n, err := checkPadded(data, blockSize)
	if err != nil {
		return nil, err
	}
	return data[:len(data)-n], nil
}

// checkPadded validates the padded data length and returns the
// padding length from its final byte.
func checkPadded(data []byte, blockSize int) (int, error) {
	if blockSize < 1 || blockSize > 255 {
		return 0, fmt.Errorf("%w: %d", ErrorInvalidBlockSize, blockSize)
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return 0, fmt.Errorf("%w: length %d not a multiple of %d",
			ErrorInvalidPadding, len(data), blockSize)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return 0, fmt.Errorf("%w: padding length %d", ErrorInvalidPadding, n)
	}
	return n, nil
}
