// Package folio maintains a personal investment ledger and derives the
// portfolio state from it: per-asset FIFO lot inventories, realized and
// unrealized profit-and-loss, and the cash position.
//
// The core is a deterministic accounting engine:
//   - Ledger Management: an append-only, chronologically ordered log of
//     transactions (buys, sells, dividends, deposits, withdrawals, fees)
//     together with the asset registry, the current price table and the
//     persisted realized P&L record.
//   - Accounting Engine: a stateless replay of the log producing lot
//     inventories, cash and holding summaries; all derived values are
//     recomputed on demand and never stored.
//   - Data Persistence: a deterministic textual encoding of the whole
//     state with a matching lenient parser, which also backs the bounded
//     snapshot-based undo history.
//
// This package serves as the foundational logic for the `folio`
// command-line tool; the command shell is a thin presentation layer that
// only calls into the Session facade and renders its outputs.
package folio
