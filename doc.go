// Package footprint provides a set of functions and types for maintaining a
// ledger of greenhouse-gas emission records for an organization. It is
// designed to be local-first and auditable, keeping the durable data in a
// single human-readable document.
//
// The core functionalities include:
//   - Record Model: one emission entry per record, with a fixed column set,
//     scope-dependent classifications, and derived emissions computed as
//     quantity × emission factor.
//   - Ledger Management: an insertion-ordered collection of records with
//     append, positional deletion, and all-or-nothing bulk merge.
//   - Data Persistence: saving and reloading the ledger with a backup taken
//     before every overwrite and automatic quarantine of corrupt content.
//   - Bulk Import/Export: a tabular format with schema validation, type
//     coercion and organizational defaults, round-trippable both ways.
//   - Aggregation: totals, per-scope and per-category sums, monthly trends
//     and period-over-period comparisons for reporting.
//
// This package serves as the foundational logic for the `ycf` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package footprint
