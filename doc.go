// Package settlement models trading instructions and the reports derived
// from them.
//
// The core functionalities include:
//   - Instructions: an immutable, validated buy or sell order on a traded
//     entity, with an agreed FX rate, a number of units and a price per unit.
//     Its settlement date is moved to the next business day at construction,
//     where business days depend on the settlement currency.
//   - Trade amount: the USD equivalent of an instruction, computed with exact
//     decimal arithmetic.
//   - Reports: a read-only view over a snapshot of instructions that sums and
//     ranks incoming (sell) and outgoing (buy) amounts settled on a given day.
//   - Codecs: decoding instructions from JSONL or CSV files supplied by order
//     intake.
//
// This package serves as the foundational logic for the `stl` command-line
// tool.
package settlement
