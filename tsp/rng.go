// SPDX-License-Identifier: MIT

// Package tsp - deterministic RNG streams for restarts.
//
// math/rand.Rand is not goroutine-safe; every restart gets its own stream,
// derived from (seed, restart) alone so results do not depend on scheduling.
package tsp

import "math/rand"

// defaultRNGSeed replaces a zero seed.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// restartRNG returns the stream of restart r under seed (0 → defaultRNGSeed).
func restartRNG(seed int64, r int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(r))))
}

// restartStart picks the start vertex of restart r: opts.StartVertex for
// r == 0, otherwise a draw from the restart's stream.
func restartStart(opts Options, r, n int) int {
	if r == 0 {
		return opts.StartVertex
	}
	return restartRNG(opts.Seed, r).Intn(n)
}
