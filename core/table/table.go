package table

// Row is one record, mapping column identity to raw cell text.
// Missing columns read as empty strings so downstream checks can treat
// absent and blank cells identically.
type Row map[string]string

// Get returns the cell content for a column, or "" if the row does not
// carry that column.
func (r Row) Get(column string) string {
	return r[column]
}

// Set assigns cell content for a column.
func (r Row) Set(column, value string) {
	r[column] = value
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an in-memory sheet: an ordered list of column identities and
// the rows that carry them. Rows may omit columns; readers fill them as "".
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// HasColumn reports whether the column is part of the table layout.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the layout if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// RenameColumn renames a column in the layout and in every row.
// It is a no-op if the column does not exist.
func (t *Table) RenameColumn(from, to string) {
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
			for _, row := range t.Rows {
				if v, ok := row[from]; ok {
					delete(row, from)
					row[to] = v
				}
			}
			return
		}
	}
}

// DropColumn removes a column from the layout and from every row.
func (t *Table) DropColumn(name string) {
	for i, c := range t.Columns {
		if c == name {
			t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
			break
		}
	}
	for _, row := range t.Rows {
		delete(row, name)
	}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the cell contents of one column, in row order.
func (t *Table) Column(name string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row.Get(name)
	}
	return out
}

// Metadata carries workbook details that survive the merge but do not
// live in cell text, such as hyperlink targets captured at read time.
type Metadata struct {
	// Hyperlinks maps original (1-based) workbook row numbers to the
	// hyperlink targets found in that row, keyed by column identity.
	Hyperlinks map[int]map[string]string
}

// NewMetadata creates empty metadata.
func NewMetadata() *Metadata {
	return &Metadata{Hyperlinks: make(map[int]map[string]string)}
}

// AddHyperlink records one hyperlink target for a cell.
func (m *Metadata) AddHyperlink(originalRow int, column, target string) {
	links, ok := m.Hyperlinks[originalRow]
	if !ok {
		links = make(map[string]string)
		m.Hyperlinks[originalRow] = links
	}
	links[column] = target
}
