package table

// Row holds the cells of a single record keyed by column name.
// Cell values are restricted to the scalar kinds produced by the dataset
// loaders: nil, string, int64, float64 and bool.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset is an ordered collection of rows sharing a common schema.
// Columns preserves the declaration order of the schema; Rows preserves
// input order. Datasets are treated as immutable inputs by the engine.
type Dataset struct {
	// Columns lists the column names in schema order.
	Columns []string `json:"columns"`

	// Rows contains the records in input order.
	Rows []Row `json:"rows"`
}

// New creates an empty dataset with the given schema.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: columns, Rows: []Row{}}
}

// HasColumn reports whether the dataset schema contains the given column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row to the dataset.
func (d *Dataset) Append(r Row) {
	d.Rows = append(d.Rows, r)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Empty reports whether the dataset has no rows.
func (d *Dataset) Empty() bool {
	return len(d.Rows) == 0
}
