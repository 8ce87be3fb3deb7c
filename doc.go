// Package biashara provides the bookkeeping core of a small shop: inventory,
// sales, expenses, debts, loans and owner equity. It is local-first: the whole
// state of the shop is a single document stored on disk, rewritten after
// every change.
//
// The core functionalities include:
//   - Entity Model: the records of the shop and their constructors.
//   - Schema Migration: decoding any stored document, including those written
//     by older versions, into the current State.
//   - Persistent Store: loading and saving the state, and a log of labeled
//     snapshots to roll back to.
//   - State Update Protocol: a Session that applies pure Update functions one
//     at a time, saves the result and reports a sync status.
//   - Derived Aggregates: stats, daily trend and growth projection computed
//     on demand from the state.
//
// This package serves as the foundational logic for the `bms` command-line
// tool, so that every command changes the shop the same way.
package biashara
