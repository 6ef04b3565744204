// Package highlight defines the renderer-agnostic output shape shared by
// the revision reconciler and the title alignment differ: ordered lists
// of (text, emphasis) segments that an external formatter turns into
// rich text.
package highlight
