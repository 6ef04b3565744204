// Package table provides the in-memory row model shared by the readers,
// the merge join and the reconciliation engine: rows are plain maps from
// column identity to cell text, so a missing column and a blank cell are
// indistinguishable downstream.
package table
