// Package moneybook is the core of a local-first personal finance tracker.
// It keeps the whole dataset in a single normalized document and derives
// everything else from it on demand.
//
// The core pieces are:
//   - Document Model: transactions, accounts, savings goals, budgets and
//     category declarations in one AppState value, the single source of
//     truth.
//   - Reducer: every mutation is a canonical Action interpreted by Reduce,
//     a pure function from document to document. Nothing else writes.
//   - Book: the live container around the document. It validates input,
//     mints identifiers, expands compound operations (savings-goal
//     contributions) and notifies listeners once per effective change.
//   - Persistence: a debouncing Coordinator feeds snapshots to a Saver;
//     the store package provides the sqlite-backed one. Documents from
//     older layouts are upgraded by Normalize on the way in.
//   - Reports: pure derived computations over the document, such as
//     account balances, period statistics, category rankings, budget
//     consumption, trend series and month-over-month comparisons.
//
// This package serves as the foundational logic for the `mbk` command-line
// tool.
package moneybook
