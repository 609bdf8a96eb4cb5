// Package verify provides stateless assertion helpers for test code.
//
// Every helper either returns silently or raises a *Failure by panicking,
// so a violated assertion always aborts the current test unit unless the
// calling harness intercepts it with Recover.
//
// Core helpers:
//   - True / False: boolean conditions with stock or caller-supplied messages
//   - Equal: nil-safe value equality with diff output for multiline mismatches
//   - CheckEqualsAndHashCode: equality and hash-code consistency in one call
//   - Fail: unconditional failure
//
// Values may opt into their own equality and hash semantics by implementing
// Equaler and Hasher; everything else falls back to deep equality.
package verify
