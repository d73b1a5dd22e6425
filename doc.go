// Package foundation implements a simulated multi-currency ledger with an
// attached friction metric called tension. It is designed to be local-first
// and single-actor: one process, one logical writer, synchronous
// operations.
//
// The core functionalities include:
//   - Ledger Store: a fixed set of named accounts, each holding one exact
//     decimal balance per currency of a fixed enumerated set; balances
//     never go negative.
//   - Tension Accumulator: a floor-clamped scalar that absorbs the
//     friction of transfer acts, especially external-facing ones.
//   - Transfer Engine: the basic transfer primitive and the universal
//     transfer act with its internal/external/ATM fee policy; 10% of every
//     non-internal transfer is split off to the Tax_Archive account.
//   - Persistence Gateway: snapshot/restore of the combined state through
//     a durable local key-value store, with migration of legacy snapshot
//     shapes.
//
// This package serves as the foundational logic for the `msgai`
// command-line tool and the oracle prompt consumer, ensuring that all
// mutations go through a single owning Store and are durable on return.
package foundation
