//
// modes_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// testData returns n deterministic pseudo-random bytes.
func testData(n int, seed byte) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	key[0] = seed

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	data := make([]byte, n)
	c.XORKeyStream(data, data)
	return data
}

func testLengths(f *Family, m Mode) []int {
	bs := f.BlockSize
	if m.Stream() {
		var result []int
		for l := 0; l <= 3*bs+1; l++ {
			result = append(result, l)
		}
		return result
	}
	return []int{bs, 2 * bs, 5 * bs, 64 * bs}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range Families() {
		key := testData(f.KeySizes[len(f.KeySizes)-1], 1)
		iv := testData(f.BlockSize, 2)
		for _, m := range f.Modes {
			for _, l := range testLengths(f, m) {
				plain := testData(l, 3)
				encrypted, err := Encrypt(f, m, key, iv, plain)
				if err != nil {
					t.Fatalf("%s-%s: Encrypt(%d): %s", f, m, l, err)
				}
				if len(encrypted) != len(plain) {
					t.Fatalf("%s-%s: ciphertext length %d, expected %d",
						f, m, len(encrypted), len(plain))
				}
				if l >= f.BlockSize && bytes.Equal(encrypted, plain) {
					t.Fatalf("%s-%s: ciphertext equals plaintext", f, m)
				}
				decrypted, err := Decrypt(f, m, key, iv, encrypted)
				if err != nil {
					t.Fatalf("%s-%s: Decrypt(%d): %s", f, m, l, err)
				}
				if !bytes.Equal(decrypted, plain) {
					t.Fatalf("%s-%s: round trip failed for length %d",
						f, m, l)
				}
			}
		}
	}
}

func TestAllKeySizes(t *testing.T) {
	for _, f := range Families() {
		iv := testData(f.BlockSize, 2)
		plain := testData(4*f.BlockSize, 3)
		for _, ks := range f.KeySizes {
			key := testData(ks, 4)
			encrypted, err := Encrypt(f, CBC, key, iv, plain)
			if err != nil {
				t.Fatalf("%s: key size %d: %s", f, ks, err)
			}
			decrypted, err := Decrypt(f, CBC, key, iv, encrypted)
			if err != nil || !bytes.Equal(decrypted, plain) {
				t.Fatalf("%s: key size %d: round trip failed", f, ks)
			}
		}
	}
}

func TestInputsNotModified(t *testing.T) {
	key := testData(16, 1)
	iv := testData(16, 2)
	plain := testData(100, 3)

	ivCopy := bytes.Clone(iv)
	plainCopy := bytes.Clone(plain)
	keyCopy := bytes.Clone(key)

	for _, m := range Modes() {
		l := len(plain)
		if !m.Stream() {
			l = 96
		}
		_, err := Encrypt(AES, m, key, iv, plain[:l])
		if err != nil {
			t.Fatalf("%s: %s", m, err)
		}
		if !bytes.Equal(iv, ivCopy) || !bytes.Equal(plain, plainCopy) ||
			!bytes.Equal(key, keyCopy) {
			t.Fatalf("%s: input modified", m)
		}
	}
}

func TestValidation(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)

	tests := []struct {
		f    *Family
		m    Mode
		key  []byte
		iv   []byte
		data []byte
		err  error
	}{
		{AES, CBC, key[:15], iv, make([]byte, 16), ErrorInvalidKeySize},
		{AES, CBC, make([]byte, 33), iv, make([]byte, 16), ErrorInvalidKeySize},
		{DES, ECB, key, nil, make([]byte, 8), ErrorInvalidKeySize},
		{TripleDES, ECB, key, nil, make([]byte, 8), ErrorInvalidKeySize},
		{AES, CBC, key, iv[:8], make([]byte, 16), ErrorInvalidIVSize},
		{AES, CTR, key, nil, make([]byte, 16), ErrorInvalidIVSize},
		{AES, CFB, key, make([]byte, 17), nil, ErrorInvalidIVSize},
		{DES, OFB, key[:8], iv, nil, ErrorInvalidIVSize},
		{AES, ECB, key, nil, make([]byte, 15), ErrorInvalidBlockAlignment},
		{AES, ECB, key, nil, nil, ErrorInvalidBlockAlignment},
		{AES, CBC, key, iv, make([]byte, 17), ErrorInvalidBlockAlignment},
		{DES, CBC, key[:8], iv[:8], make([]byte, 12), ErrorInvalidBlockAlignment},
		{DES, CTR, key[:8], iv[:8], make([]byte, 8), ErrorUnsupportedCombination},
		{Blowfish, CTR, key, iv[:8], make([]byte, 8), ErrorUnsupportedCombination},
		{nil, ECB, key, nil, make([]byte, 16), ErrorUnsupportedCombination},
		{AES, Mode(17), key, iv, make([]byte, 16), ErrorUnsupportedCombination},
	}
	for idx, test := range tests {
		_, err := Encrypt(test.f, test.m, test.key, test.iv, test.data)
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: Encrypt: err=%v, expected %v",
				idx, err, test.err)
		}
		_, err = Decrypt(test.f, test.m, test.key, test.iv, test.data)
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: Decrypt: err=%v, expected %v",
				idx, err, test.err)
		}
	}
}

func TestECBIgnoresIV(t *testing.T) {
	key := testData(16, 1)
	plain := testData(32, 3)

	c1, err := Encrypt(AES, ECB, key, nil, plain)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Encrypt(AES, ECB, key, make([]byte, 3), plain)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c1, c2) {
		t.Errorf("ECB ciphertext depends on IV")
	}

	repeated := append(bytes.Clone(plain[:16]), plain[:16]...)
	c3, err := Encrypt(AES, ECB, key, nil, repeated)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c3[:16], c3[16:]) || !bytes.Equal(c3[:16], c1[:16]) {
		t.Errorf("ECB blocks are not independent")
	}
}

func TestStreamPartialSegment(t *testing.T) {
	for _, f := range []*Family{AES, DES, Twofish, Blowfish} {
		key := testData(f.KeySizes[0], 1)
		iv := testData(f.BlockSize, 2)
		plain := testData(4*f.BlockSize, 3)

		for _, m := range []Mode{CFB, OFB, CTR} {
			if !f.Supports(m) {
				continue
			}
			full, err := Encrypt(f, m, key, iv, plain)
			if err != nil {
				t.Fatal(err)
			}
			for l := 0; l < len(plain); l++ {
				partial, err := Encrypt(f, m, key, iv, plain[:l])
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(partial, full[:l]) {
					t.Fatalf("%s-%s: truncated keystream mismatch at %d",
						f, m, l)
				}
			}
		}
	}
}

func TestOFBSymmetric(t *testing.T) {
	key := testData(16, 1)
	iv := testData(16, 2)
	plain := testData(77, 3)
	zeros := make([]byte, len(plain))

	keystream, err := Encrypt(AES, OFB, key, iv, zeros)
	if err != nil {
		t.Fatal(err)
	}
	encrypted, err := Encrypt(AES, OFB, key, iv, plain)
	if err != nil {
		t.Fatal(err)
	}
	for i := range plain {
		if encrypted[i] != plain[i]^keystream[i] {
			t.Fatalf("OFB keystream depends on data at %d", i)
		}
	}
}

func TestCFBFeedback(t *testing.T) {
	key := testData(16, 1)
	iv := testData(16, 2)
	plain := testData(48, 3)

	encrypted, err := Encrypt(AES, CFB, key, iv, plain)
	if err != nil {
		t.Fatal(err)
	}

	// Flipping a plaintext bit changes the following ciphertext
	// segment through the feedback.
	modified := bytes.Clone(plain)
	modified[0] ^= 1
	encrypted2, err := Encrypt(AES, CFB, key, iv, modified)
	if err != nil {
		t.Fatal(err)
	}
	if encrypted2[0] != encrypted[0]^1 {
		t.Errorf("CFB first segment is not plaintext XOR keystream")
	}
	if bytes.Equal(encrypted[16:32], encrypted2[16:32]) {
		t.Errorf("CFB ciphertext does not feed back")
	}
}

func TestCounter(t *testing.T) {
	tests := []struct {
		counter  []byte
		add      uint64
		expected []byte
	}{
		{[]byte{0, 0, 0, 0}, 1, []byte{0, 0, 0, 1}},
		{[]byte{0, 0, 0, 0xff}, 1, []byte{0, 0, 1, 0}},
		{[]byte{0xff, 0xff, 0xff, 0xff}, 1, []byte{0, 0, 0, 0}},
		{[]byte{0xff, 0xff, 0xff, 0xfe}, 3, []byte{0, 0, 0, 1}},
		{[]byte{0, 0, 0x01, 0xff}, 0x0201, []byte{0, 0, 0x04, 0x00}},
		{[]byte{0x12, 0x34}, 0x10000, []byte{0x12, 0x34}},
	}
	for _, test := range tests {
		counter := bytes.Clone(test.counter)
		addCounter(counter, test.add)
		if !bytes.Equal(counter, test.expected) {
			t.Errorf("%x+%d=%x, expected %x",
				test.counter, test.add, counter, test.expected)
		}
		if test.add == 1 {
			counter = bytes.Clone(test.counter)
			incCounter(counter)
			if !bytes.Equal(counter, test.expected) {
				t.Errorf("inc(%x)=%x, expected %x",
					test.counter, counter, test.expected)
			}
		}
	}
}

func TestCTRWrap(t *testing.T) {
	key := testData(16, 1)
	b, err := AES.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0xff}, 16)

	keystream, err := Encrypt(AES, CTR, key, iv, make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}

	expected := make([]byte, 32)
	b.Encrypt(expected[:16], iv)
	b.Encrypt(expected[16:], make([]byte, 16))

	if !bytes.Equal(keystream, expected) {
		t.Errorf("CTR counter did not wrap: got %x, expected %x",
			keystream, expected)
	}
}

func TestCTRNextIV(t *testing.T) {
	key := testData(16, 1)
	iv := testData(16, 2)
	plain := testData(64, 3)

	ivNext := bytes.Clone(iv)
	incCounter(ivNext)

	c1, err := Encrypt(AES, CTR, key, iv, plain)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := Encrypt(AES, CTR, key, ivNext, plain)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(c1[:16], c2[:16]) {
		t.Errorf("IV and IV+1 produce the same first block")
	}
	// The keystream of IV+1 is the keystream of IV shifted by one
	// block.
	for i := 0; i < 48; i++ {
		if c1[16+i]^plain[16+i] != c2[i]^plain[i] {
			t.Fatalf("CTR keystream mismatch at %d", i)
		}
	}
}

func TestFamilies(t *testing.T) {
	for _, f := range Families() {
		parsed, err := ParseFamily(f.Name)
		if err != nil || parsed != f {
			t.Errorf("ParseFamily(%s)=%v, %v", f.Name, parsed, err)
		}
		bits := f.CounterBits()
		if f.Supports(CTR) && bits != f.BlockSize*8 {
			t.Errorf("%s: counter bits %d", f, bits)
		}
		if !f.Supports(CTR) && bits != 0 {
			t.Errorf("%s: counter bits %d without CTR", f, bits)
		}
		for _, ks := range f.KeySizes {
			b, err := f.NewCipher(make([]byte, ks))
			if err != nil {
				t.Fatalf("%s: NewCipher(%d): %s", f, ks, err)
			}
			if b.BlockSize() != f.BlockSize {
				t.Errorf("%s: block size %d, expected %d",
					f, b.BlockSize(), f.BlockSize)
			}
		}
	}
	f, err := ParseFamily("3DES")
	if err != nil || f != TripleDES {
		t.Errorf("ParseFamily(3DES)=%v, %v", f, err)
	}
	if _, err = ParseFamily("rc5"); err == nil {
		t.Errorf("ParseFamily(rc5) succeeded")
	}
	if _, err = AES.NewCipher(make([]byte, 8)); !errors.Is(err, ErrorInvalidKeySize) {
		t.Errorf("AES.NewCipher(8): err=%v", err)
	}
}

func TestModeNames(t *testing.T) {
	for _, m := range Modes() {
		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%s)=%v, %v", m, parsed, err)
		}
		parsed, err = ParseMode(strings.ToUpper(m.String()))
		if err != nil || parsed != m {
			t.Errorf("ParseMode(%v)=%v, %v", m, parsed, err)
		}
	}
	if _, err := ParseMode("gcm"); err == nil {
		t.Errorf("ParseMode(gcm) succeeded")
	}
	if ECB.NeedsIV() || !CBC.NeedsIV() || CBC.Stream() || !OFB.Stream() {
		t.Errorf("invalid mode properties")
	}
}
