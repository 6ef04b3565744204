// Package merge implements the spreadsheet pipeline around the
// reconciliation engine: reading input workbooks, merging them on their
// reference columns, applying metadata validators and the title match,
// running the revision reconciler per merged row, and writing a styled
// output workbook with rich-text highlights.
package merge
