//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global configuration of the primitives
// suite.
package env

import (
	"crypto/rand"
	"io"
	"runtime"
)

// Config defines the global configuration for the primitives
// suite. Config must not be modified after being passed to any
// module. It is safe for concurrent use by multiple modules as they do
// not modify it.
type Config struct {
	// Rand is the source of entropy for randomized padding schemes
	// and key generation helpers. The crypto/rand reader is used if
	// unset.
	Rand io.Reader

	// Workers bounds the number of goroutines used by the
	// parallelizable cipher modes (ECB, CTR). Zero selects
	// runtime.GOMAXPROCS and one disables parallel processing.
	Workers int
}

// GetRandom returns the source of entropy.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetWorkers returns the maximum number of worker goroutines.
func (config *Config) GetWorkers() int {
	if config == nil || config.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return config.Workers
}
