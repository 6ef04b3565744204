// Package revision reconciles the revision histories two independently
// authored sources record for the same drawing.
//
// Source A cells carry "code | description | date" triples, one revision
// slot per configured column. Source B columns embed their description
// and reference date in the column identity and hold the bare code in
// the cell. A pattern rule defines what a valid code looks like and how
// consecutive codes are derived; an optional generated entry represents
// the code a well-formed Source B should contain next.
//
// The comparator pairs entries positionally, validates codes against the
// pattern rule, and accumulates human-readable comments plus per-column
// highlight flags. All expected failures (missing entries, mismatches,
// malformed dates) are represented as data; the engine is a pure,
// synchronous transformation of one row plus immutable Settings into a
// Result, safe to invoke in parallel across rows.
//
// # Usage
//
//	checker, err := revision.NewChecker(settings)
//	if err != nil {
//	    return err // configuration problem, every row would fail
//	}
//	for i, row := range rows {
//	    res := checker.CheckRow(row)
//	    row.Set(revision.ColComments, res.Comments)
//	    // res.Highlights: column -> []highlight.Segment
//	}
package revision
