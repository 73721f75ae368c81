//
// commands.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/primitives"
	"github.com/markkurossi/primitives/digest"
	"github.com/markkurossi/primitives/modes"
	"github.com/markkurossi/primitives/padding"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// readInputs calls fn for each named file or for standard input if
// no files are given.
func readInputs(files []string, fn func(name string, data []byte) error) error {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return fn("", data)
	}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		err = fn(file, data)
		if err != nil {
			return err
		}
	}
	return nil
}

func cmdHash(args []string) error {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	fAlg := fs.String("a", "sha256", "hash variant")
	fs.Parse(args)

	v, err := digest.ParseVariant(*fAlg)
	if err != nil {
		return err
	}
	return readInputs(fs.Args(), func(name string, data []byte) error {
		if verbose {
			log.Printf("%s: %d bytes", v, len(data))
		}
		return printResult(fs.NArg(), name, v.String(),
			primitives.Hash(v, data))
	})
}

func cmdHMAC(args []string) error {
	fs := flag.NewFlagSet("hmac", flag.ExitOnError)
	fAlg := fs.String("a", "sha256", "hash variant")
	fKey := fs.String("k", "", "hex encoded key")
	fs.Parse(args)

	v, err := digest.ParseVariant(*fAlg)
	if err != nil {
		return err
	}
	key, err := primitives.FormatHex.Decode(*fKey)
	if err != nil {
		return fmt.Errorf("invalid key: %s", err)
	}
	return readInputs(fs.Args(), func(name string, data []byte) error {
		return printResult(fs.NArg(), name, "HMAC-"+v.String(),
			primitives.HMAC(v, key, data))
	})
}

func printResult(files int, name, label string, data []byte) error {
	if files > 1 || (files == 1 && verbose) {
		label = fmt.Sprintf("%s(%s)", label, name)
	} else if format != primitives.FormatDump {
		label = ""
	}
	return primitives.PrintResult(os.Stdout, label, data, format)
}

type cipherArgs struct {
	alg    primitives.Algorithm
	scheme padding.Scheme
	key    []byte
	iv     []byte
	input  []byte
}

func parseCipherArgs(name string, args []string, generate bool) (
	*cipherArgs, error) {

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fAlg := fs.String("a", "aes-cbc", "cipher algorithm")
	fKey := fs.String("k", "", "hex encoded key")
	fIV := fs.String("iv", "", "hex encoded IV")
	fPadding := fs.String("p", "pkcs7", "padding scheme for ECB and CBC")
	fIn := fs.String("in", "raw", "input format: raw, hex, base64")
	fs.Parse(args)

	result := new(cipherArgs)
	var err error

	result.alg, err = primitives.ParseAlgorithm(*fAlg)
	if err != nil {
		return nil, err
	}
	result.scheme, err = padding.ParseScheme(*fPadding)
	if err != nil {
		return nil, err
	}
	if len(*fKey) > 0 {
		result.key, err = primitives.FormatHex.Decode(*fKey)
		if err != nil {
			return nil, fmt.Errorf("invalid key: %s", err)
		}
	} else if generate {
		result.key, err = suite.NewKey(result.alg, 0)
		if err != nil {
			return nil, err
		}
		log.Printf("key: %x", result.key)
	} else {
		return nil, fmt.Errorf("no key specified")
	}
	if len(*fIV) > 0 {
		result.iv, err = primitives.FormatHex.Decode(*fIV)
		if err != nil {
			return nil, fmt.Errorf("invalid IV: %s", err)
		}
	} else if generate {
		result.iv, err = suite.NewIV(result.alg)
		if err != nil {
			return nil, err
		}
		if result.iv != nil {
			log.Printf("iv : %x", result.iv)
		}
	}

	inFormat, err := primitives.ParseFormat(*fIn)
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%s: too many input files", name)
	}
	err = readInputs(fs.Args(), func(name string, data []byte) error {
		result.input, err = inFormat.Decode(string(data))
		return err
	})
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("%s: %s padding, %d bytes", result.alg, result.scheme,
			len(result.input))
	}
	return result, nil
}

func cmdEncrypt(args []string) error {
	ca, err := parseCipherArgs("enc", args, true)
	if err != nil {
		return err
	}
	ciphertext, err := suite.Seal(ca.alg, ca.scheme, ca.key, ca.iv, ca.input)
	if err != nil {
		return err
	}
	return primitives.PrintResult(os.Stdout, "", ciphertext, format)
}

func cmdDecrypt(args []string) error {
	ca, err := parseCipherArgs("dec", args, false)
	if err != nil {
		return err
	}
	plaintext, err := suite.Open(ca.alg, ca.scheme, ca.key, ca.iv, ca.input)
	if err != nil {
		return err
	}
	return primitives.PrintResult(os.Stdout, "", plaintext, format)
}

func cmdList(args []string) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Hash").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Block").SetAlign(tabulate.MR)

	for _, v := range digest.Variants() {
		row := tab.Row()
		row.Column(v.String())
		row.Column(fmt.Sprintf("%d", v.Size()))
		row.Column(fmt.Sprintf("%d", v.BlockSize()))
	}
	tab.Print(os.Stdout)

	tab = tabulate.New(tabulate.UnicodeLight)
	tab.Header("Cipher").SetAlign(tabulate.ML)
	tab.Header("Block").SetAlign(tabulate.MR)
	tab.Header("Keys").SetAlign(tabulate.MR)
	tab.Header("Counter").SetAlign(tabulate.MR)
	tab.Header("Modes").SetAlign(tabulate.ML)

	for _, f := range modes.Families() {
		row := tab.Row()
		row.Column(f.Name).SetFormat(tabulate.FmtBold)
		row.Column(fmt.Sprintf("%d", f.BlockSize))
		row.Column(keySizes(f.KeySizes))
		if bits := f.CounterBits(); bits > 0 {
			row.Column("2" + superscript.Itoa(bits))
		} else {
			row.Column("-").SetFormat(tabulate.FmtItalic)
		}
		var names string
		for idx, m := range f.Modes {
			if idx > 0 {
				names += " "
			}
			names += m.String()
		}
		row.Column(names)
	}
	tab.Print(os.Stdout)

	return nil
}

func keySizes(sizes []int) string {
	if len(sizes) == 0 {
		return ""
	}
	first := sizes[0]
	last := sizes[len(sizes)-1]
	if len(sizes) > 2 && last-first+1 == len(sizes) {
		return fmt.Sprintf("%d-%d", first, last)
	}
	var result string
	for idx, size := range sizes {
		if idx > 0 {
			result += ","
		}
		result += fmt.Sprintf("%d", size)
	}
	return result
}
