package skincare

// Row is a single knowledge table entry.
type Row struct {
	Keywords      string `mapstructure:"keywords"`
	SkinType      string `mapstructure:"skin_type"`
	IssueCategory string `mapstructure:"issue_category"`
	Ingredients   string `mapstructure:"ingredients"`
	Product       string `mapstructure:"product"`
}

// Table is an immutable, ordered set of knowledge rows.
type Table struct {
	rows []Row
}

// NewTable copies rows into a new Table. Later changes to rows are not
// visible through the table.
func NewTable(rows []Row) *Table {
	return &Table{rows: append([]Row(nil), rows...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns a copy of the rows in table order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return append([]Row(nil), t.rows...)
}
