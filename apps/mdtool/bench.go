//
// bench.go
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
	"os"
	"time"

	"github.com/markkurossi/primitives"
	"github.com/markkurossi/primitives/digest"
	"github.com/markkurossi/primitives/env"
	"github.com/markkurossi/primitives/hmac"
	"github.com/markkurossi/primitives/modes"
)

var benchCiphers = []string{
	"aes-ecb", "aes-cbc", "aes-cfb", "aes-ofb", "aes-ctr",
	"twofish-ctr", "des-cbc", "des3-cbc", "blowfish-cbc",
	"cast5-cbc", "xtea-cbc",
}

// parallelMode tests if the engine splits the algorithm's input
// between workers.
func parallelMode(alg primitives.Algorithm) bool {
	return alg.Mode == modes.ECB || alg.Mode == modes.CTR
}

func cmdBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	fSize := fs.Int("s", 1024*1024, "input size in bytes")
	fs.Parse(args)

	size := *fSize
	if size <= 0 {
		return fmt.Errorf("invalid input size %d", size)
	}
	// Block aligned for all cipher families.
	size = (size + 15) / 16 * 16

	data := make([]byte, size)
	_, err := io.ReadFull(config.GetRandom(), data)
	if err != nil {
		return err
	}

	timing := NewTiming()

	for _, v := range digest.Variants() {
		v.Sum(data)
		timing.Sample(v.String(), uint64(size))
	}
	mac := hmac.New(digest.SHA256)
	mac.Sum([]byte("key"), data)
	timing.Sample("HMAC-"+digest.SHA256.String(), uint64(size))

	for _, tag := range benchCiphers {
		alg, err := primitives.ParseAlgorithm(tag)
		if err != nil {
			return err
		}
		key, err := suite.NewKey(alg, 0)
		if err != nil {
			return err
		}
		iv, err := suite.NewIV(alg)
		if err != nil {
			return err
		}
		_, err = suite.Encrypt(alg, key, iv, data)
		if err != nil {
			return err
		}
		sample := timing.Sample(alg.String(), uint64(size))

		if parallelMode(alg) {
			// Compare the parallel mode with one worker.
			d := sample.Duration()
			seq := primitives.NewSuite(&env.Config{
				Workers: 1,
			})
			start := time.Now()
			_, err = seq.Encrypt(alg, key, iv, data)
			if err != nil {
				return err
			}
			sample.AbsSubSample("sequential", uint64(size),
				time.Since(start))
			sample.AbsSubSample(
				fmt.Sprintf("%d workers", config.GetWorkers()),
				uint64(size), d)

			// The next sample starts after the comparison run.
			sample.Abs = d
			sample.End = time.Now()
		}
	}
	timing.Print(os.Stdout)

	return nil
}
