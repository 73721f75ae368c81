//
// parallel.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package modes

import (
	"crypto/cipher"
	"sync"
)

// minChunkBlocks is the minimum number of blocks a worker processes.
const minChunkBlocks = 1024

// parallel splits n bytes into block aligned chunks and calls fn for
// each chunk. The chunks are processed concurrently when the input is
// large enough and the engine allows more than one worker. Only modes
// without chaining between blocks may use parallel.
func (e *Engine) parallel(b cipher.Block, n int, fn func(from, to int)) {
	bs := b.BlockSize()
	blocks := (n + bs - 1) / bs

	workers := e.workers(b, n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	per := (blocks + workers - 1) / workers * bs

	var wg sync.WaitGroup
	for from := 0; from < n; from += per {
		to := min(from+per, n)
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			fn(from, to)
		}(from, to)
	}
	wg.Wait()
}

// workers returns the number of goroutines parallel uses for n bytes.
func (e *Engine) workers(b cipher.Block, n int) int {
	bs := b.BlockSize()
	blocks := (n + bs - 1) / bs
	return min(e.config.GetWorkers(), blocks/minChunkBlocks)
}
