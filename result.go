//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package primitives

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Format specifies how byte results are rendered and parsed.
type Format int

// Result formats.
const (
	FormatHex Format = iota
	FormatBase64
	FormatDump
	FormatRaw
)

var formatNames = map[Format]string{
	FormatHex:    "hex",
	FormatBase64: "base64",
	FormatDump:   "dump",
	FormatRaw:    "raw",
}

func (f Format) String() string {
	name, ok := formatNames[f]
	if ok {
		return name
	}
	return fmt.Sprintf("{Format %d}", int(f))
}

// ParseFormat parses the format name.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(name)
	for f, fn := range formatNames {
		if fn == n {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format '%s'", name)
}

// Encode renders the result data in the format.
func (f Format) Encode(data []byte) string {
	switch f {
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(data)

	case FormatDump:
		return hex.Dump(data)

	case FormatRaw:
		return string(data)

	default:
		return hex.EncodeToString(data)
	}
}

// Decode parses the value in the format. The dump format is not
// accepted as input. Whitespace is ignored in the hex and base64
// formats.
func (f Format) Decode(value string) ([]byte, error) {
	switch f {
	case FormatHex:
		return hex.DecodeString(strings.Join(strings.Fields(value), ""))

	case FormatBase64:
		return base64.StdEncoding.DecodeString(
			strings.Join(strings.Fields(value), ""))

	case FormatRaw:
		return []byte(value), nil

	default:
		return nil, fmt.Errorf("format %s can't be decoded", f)
	}
}

// PrintResult prints the labeled result to w. The dump format starts
// the data on its own line.
func PrintResult(w io.Writer, label string, data []byte, f Format) error {
	var err error
	switch f {
	case FormatDump:
		if len(label) > 0 {
			_, err = fmt.Fprintf(w, "%s:\n", label)
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, f.Encode(data))
	case FormatRaw:
		_, err = w.Write(data)
	default:
		if len(label) > 0 {
			_, err = fmt.Fprintf(w, "%s: %s\n", label, f.Encode(data))
		} else {
			_, err = fmt.Fprintln(w, f.Encode(data))
		}
	}
	return err
}
