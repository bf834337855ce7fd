// Package cli wires the scrape/walk/dedupe/notify pipeline behind a cobra
// command.
//
// One invocation processes one rota snapshot to completion, sequentially:
// fetch rows, walk them into candidates, persist the unseen ones, send the
// digest. Exit codes distinguish configuration failures from failures of a
// validly configured run.
package cli
