//
// mode.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"fmt"
	"strings"
)

// Mode specifies the block cipher mode of operation.
type Mode int

// Modes of operation, NIST SP 800-38A.
const (
	ECB Mode = iota
	CBC
	CFB
	OFB
	CTR
)

var modeNames = []string{
	ECB: "ecb",
	CBC: "cbc",
	CFB: "cfb",
	OFB: "ofb",
	CTR: "ctr",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("{Mode %d}", int(m))
}

// Modes returns all modes of operation.
func Modes() []Mode {
	return []Mode{ECB, CBC, CFB, OFB, CTR}
}

// ParseMode parses the mode name.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(name)
	for i, mn := range modeNames {
		if mn == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cipher mode '%s'", name)
}

// Stream reports whether the mode accepts input of any length.
func (m Mode) Stream() bool {
	return m == CFB || m == OFB || m == CTR
}

// NeedsIV reports whether the mode uses an initialization vector or
// an initial counter block.
func (m Mode) NeedsIV() bool {
	return m != ECB
}
