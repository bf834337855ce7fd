// Package pipeline deduplicates candidate records against stored history
// and persists only the ones not seen before.
//
// Each candidate's identity hash is checked against the store; absent ones
// are written and reported as new. Store calls run through the retry
// policy, and the existence-check-then-conditional-write sequence makes
// repeated runs over the same rota snapshot idempotent.
package pipeline
