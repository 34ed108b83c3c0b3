// Package cachekey builds the deterministic, collision-resistant key that
// decides whether a previously compiled artifact can be reused.
//
// # Design Principles
//
//  1. Every input that can change compiled output is encoded; every input
//     that cannot (debug names, timestamps, addresses) is excluded, since
//     spurious inputs turn into spurious recompiles.
//  2. Expensive work is deferred: the content fingerprint over guaranteed
//     constants is computed lazily, at most once per key, because most
//     lookups miss on the eager part of the key and never need it.
//  3. The key generation path is pure. Identical inputs produce bit-for-bit
//     identical keys across calls, threads, and processes.
//
// # Core Types
//
// CacheKey: the opaque key handed to the cache lookup layer.
// Shape: an ordered list of tensor dimension sizes.
// ArgConfig: the compilation-relevant configuration of one argument.
// CompileMetadata: the per-request configuration the encoders consume.
// KeyGenerator: assembles the above into a CacheKey.
package cachekey
