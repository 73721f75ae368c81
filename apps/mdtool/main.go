//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Mdtool computes message digests and HMACs and encrypts and decrypts
// data with the block cipher modes of operation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/markkurossi/primitives"
	"github.com/markkurossi/primitives/env"
)

var (
	verbose = false
)

type command struct {
	usage string
	fn    func(args []string) error
}

var commands = map[string]command{
	"hash": {
		usage: "hash [-a variant] [file...]",
		fn:    cmdHash,
	},
	"hmac": {
		usage: "hmac [-a variant] -k key [file...]",
		fn:    cmdHMAC,
	},
	"enc": {
		usage: "enc [-a algorithm] [-k key] [-iv iv] [-p padding] [file]",
		fn:    cmdEncrypt,
	},
	"dec": {
		usage: "dec [-a algorithm] -k key [-iv iv] [-p padding] [file]",
		fn:    cmdDecrypt,
	},
	"list": {
		usage: "list",
		fn:    cmdList,
	},
	"bench": {
		usage: "bench [-s size]",
		fn:    cmdBench,
	},
}

var (
	config = &env.Config{}
	suite  *primitives.Suite
	format = primitives.FormatHex
)

func main() {
	fVerbose := flag.Bool("v", false, "verbose output")
	fFormat := flag.String("f", "hex", "output format: hex, base64, dump, raw")
	fWorkers := flag.Int("workers", 0,
		"number of workers for the ECB and CTR modes (0 for GOMAXPROCS)")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(0)

	verbose = *fVerbose
	config.Workers = *fWorkers
	suite = primitives.NewSuite(config)

	var err error
	format, err = primitives.ParseFormat(*fFormat)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command '%s'\n", args[0])
		usage()
		os.Exit(1)
	}
	if err := cmd.fn(args[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mdtool [options] command [args]\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()

	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
}
