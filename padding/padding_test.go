//
// padding_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package padding

import (
	"bytes"
	"errors"
	"testing"

	"github.com/markkurossi/primitives/env"
)

func TestPKCS7RoundTrip(t *testing.T) {
	data := []byte("hello, world: PKCS #7 padding round trip")

	for n := 1; n <= 255; n++ {
		for l := 0; l <= len(data); l += 7 {
			padded, err := PKCS7Pad(data[:l], n)
			if err != nil {
				t.Fatalf("PKCS7Pad(%d, %d): %s", l, n, err)
			}
			if len(padded)%n != 0 || len(padded) <= l {
				t.Fatalf("PKCS7Pad(%d, %d): invalid length %d",
					l, n, len(padded))
			}
			unpadded, err := PKCS7Unpad(padded)
			if err != nil {
				t.Fatalf("PKCS7Unpad(%d, %d): %s", l, n, err)
			}
			if !bytes.Equal(unpadded, data[:l]) {
				t.Fatalf("PKCS7Unpad(%d, %d): got %x", l, n, unpadded)
			}
			unpadded, err = PKCS7UnpadStrict(padded, n)
			if err != nil {
				t.Fatalf("PKCS7UnpadStrict(%d, %d): %s", l, n, err)
			}
			if !bytes.Equal(unpadded, data[:l]) {
				t.Fatalf("PKCS7UnpadStrict(%d, %d): got %x", l, n, unpadded)
			}
		}
	}
}

func TestPKCS7Pad(t *testing.T) {
	padded, err := PKCS7Pad([]byte{1, 2, 3}, 8)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{1, 2, 3, 5, 5, 5, 5, 5}
	if !bytes.Equal(padded, expected) {
		t.Errorf("PKCS7Pad: got %x, expected %x", padded, expected)
	}

	// Aligned input gets a full block of padding.
	padded, err = PKCS7Pad(make([]byte, 16), 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(padded) != 32 || !bytes.Equal(padded[16:], bytes.Repeat([]byte{16}, 16)) {
		t.Errorf("PKCS7Pad aligned: got %x", padded)
	}

	padded, err = PKCS7Pad(nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(padded, []byte{4, 4, 4, 4}) {
		t.Errorf("PKCS7Pad empty: got %x", padded)
	}
}

func TestPKCS7InvalidBlockSize(t *testing.T) {
	for _, bs := range []int{-1, 0, 256, 1024} {
		_, err := PKCS7Pad([]byte{1}, bs)
		if !errors.Is(err, ErrorInvalidBlockSize) {
			t.Errorf("PKCS7Pad(%d): err=%v", bs, err)
		}
	}
}

func TestPKCS7InputNotModified(t *testing.T) {
	data := make([]byte, 3, 16)
	copy(data, []byte{1, 2, 3})

	_, err := PKCS7Pad(data, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:cap(data)], append([]byte{1, 2, 3}, make([]byte, 13)...)) {
		t.Errorf("PKCS7Pad wrote to input backing array")
	}
}

// TestPKCS7UnpadLenient documents that PKCS7Unpad only reads the
// trailing length byte.
func TestPKCS7UnpadLenient(t *testing.T) {
	corrupted := []byte{'a', 'b', 'c', 'd', 9, 7, 3}

	result, err := PKCS7Unpad(corrupted)
	if err != nil {
		t.Fatalf("PKCS7Unpad: %s", err)
	}
	if !bytes.Equal(result, []byte{'a', 'b', 'c', 'd'}) {
		t.Errorf("PKCS7Unpad: got %x", result)
	}

	_, err = PKCS7UnpadStrict([]byte{'a', 'b', 'c', 'd', 9, 7, 3, 3}, 8)
	if !errors.Is(err, ErrorInvalidPadding) {
		t.Errorf("PKCS7UnpadStrict accepted corrupted padding: %v", err)
	}
}

var invalidUnpad = [][]byte{
	nil,
	{},
	{1, 2, 3, 0},
	{1, 2, 3, 5},
}

func TestPKCS7UnpadInvalid(t *testing.T) {
	for _, data := range invalidUnpad {
		_, err := PKCS7Unpad(data)
		if !errors.Is(err, ErrorInvalidPadding) {
			t.Errorf("PKCS7Unpad(%x): err=%v", data, err)
		}
	}
}

func TestPKCS7UnpadStrictInvalid(t *testing.T) {
	tests := []struct {
		data      []byte
		blockSize int
	}{
		{[]byte{1, 2, 3, 1}, 8},
		{[]byte{1, 2, 3, 4, 5, 6, 7, 9}, 8},
		{[]byte{1, 2, 3, 4, 5, 6, 2, 0}, 8},
		{[]byte{1, 2, 3, 4, 5, 6, 3, 3}, 8},
		{[]byte{4, 4, 4, 4}, 0},
	}
	for _, test := range tests {
		_, err := PKCS7UnpadStrict(test.data, test.blockSize)
		if err == nil {
			t.Errorf("PKCS7UnpadStrict(%x, %d) succeeded",
				test.data, test.blockSize)
		}
	}
}

func TestANSIX923(t *testing.T) {
	padded, err := ANSIX923Pad([]byte{1, 2, 3}, 8)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{1, 2, 3, 0, 0, 0, 0, 5}
	if !bytes.Equal(padded, expected) {
		t.Fatalf("ANSIX923Pad: got %x, expected %x", padded, expected)
	}
	data, err := ANSIX923Unpad(padded, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("ANSIX923Unpad: got %x", data)
	}
	padded[4] = 1
	if _, err = ANSIX923Unpad(padded, 8); !errors.Is(err, ErrorInvalidPadding) {
		t.Errorf("ANSIX923Unpad accepted non-zero fill: %v", err)
	}
}

func TestISO10126(t *testing.T) {
	rand := bytes.NewReader(bytes.Repeat([]byte{0xaa}, 64))

	padded, err := ISO10126Pad([]byte{1, 2, 3}, 8, rand)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{1, 2, 3, 0xaa, 0xaa, 0xaa, 0xaa, 5}
	if !bytes.Equal(padded, expected) {
		t.Fatalf("ISO10126Pad: got %x, expected %x", padded, expected)
	}
	data, err := ISO10126Unpad(padded, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("ISO10126Unpad: got %x", data)
	}

	_, err = ISO10126Pad([]byte{1, 2, 3}, 8, bytes.NewReader(nil))
	if err == nil {
		t.Errorf("ISO10126Pad succeeded with exhausted entropy source")
	}
}

func TestSchemes(t *testing.T) {
	config := &env.Config{}
	data := []byte("scheme round trip")

	for _, s := range []Scheme{PKCS7, ANSIX923, ISO10126} {
		parsed, err := ParseScheme(s.String())
		if err != nil || parsed != s {
			t.Fatalf("ParseScheme(%s)=%v, %v", s, parsed, err)
		}
		padded, err := s.Pad(data, 16, config)
		if err != nil {
			t.Fatalf("%s: Pad: %s", s, err)
		}
		result, err := s.Unpad(padded, 16)
		if err != nil {
			t.Fatalf("%s: Unpad: %s", s, err)
		}
		if !bytes.Equal(result, data) {
			t.Errorf("%s: got %q", s, result)
		}
	}
	if s, err := ParseScheme("PKCS#7"); err != nil || s != PKCS7 {
		t.Errorf("ParseScheme(PKCS#7)=%v, %v", s, err)
	}
	if _, err := ParseScheme("zero"); err == nil {
		t.Errorf("ParseScheme(zero) succeeded")
	}
}
