package magplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	pkgerrors "github.com/pkg/errors"
)

// DataFrame is a columnar table of measurements. Numerical columns hold
// their values directly, string columns hold indices into Pool.
type DataFrame struct {
	Name    string            // Name of the data frame, typically the CSV file name.
	N       int               // Number of rows.
	Columns map[string]*Field // Columns by header name.
	Order   []string          // Column names in CSV header order.
	Pool    *StringPool       // Interned string values of all string columns.
}

// NewDataFrame returns an empty data frame with the given name. A nil pool
// allocates a fresh one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]*Field),
		Pool:    pool,
	}
}

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Float FieldType = iota
	String
)

func (t FieldType) String() string {
	switch t {
	case Float:
		return "Float"
	case String:
		return "String"
	}
	return fmt.Sprintf("FieldType(%d)", uint(t))
}

// Field is one column of a data frame.
type Field struct {
	Type FieldType
	Data []float64
	Pool *StringPool
}

// NewField allocates a field of n zero values.
func NewField(n int, typ FieldType, pool *StringPool) *Field {
	return &Field{
		Type: typ,
		Data: make([]float64, n),
		Pool: pool,
	}
}

// Discrete reports whether f holds categorical data.
func (f *Field) Discrete() bool { return f.Type == String }

// String returns the string value stored as x in a String field.
func (f *Field) String(x float64) string {
	return f.Pool.Get(int(x))
}

// ReadCSVFile reads the CSV file at path into a data frame named by the
// base name of path.
func ReadCSVFile(path string) (*DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "cannot open data file")
	}
	defer file.Close()

	return ReadCSV(filepath.Base(path), file)
}

// ReadCSV reads a CSV with a header row. A column is numerical if all its
// non-empty cells parse as numbers; empty and "nan" cells become NaN. All
// other columns are string columns.
func ReadCSV(name string, r io.Reader) (*DataFrame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrBadCSV, "%s: %v", name, err)
	}
	if len(records) == 0 {
		return nil, pkgerrors.Wrapf(ErrBadCSV, "%s: missing header row", name)
	}

	header := records[0]
	rows := records[1:]
	df := NewDataFrame(name, nil)
	df.N = len(rows)

	seen := NewStringSet()
	for j, h := range header {
		h = strings.TrimSpace(h)
		if seen.Contains(h) {
			return nil, pkgerrors.Wrapf(ErrBadCSV, "%s: duplicate column %q", name, h)
		}
		seen.Add(h)

		column := make([]string, len(rows))
		for i, row := range rows {
			column[i] = strings.TrimSpace(row[j])
		}
		df.Columns[h] = parseColumn(column, df.Pool)
		df.Order = append(df.Order, h)
	}

	return df, nil
}

// parseColumn turns the raw cells of one column into a field.
func parseColumn(cells []string, pool *StringPool) *Field {
	floats := make([]float64, len(cells))
	numeric := true
	for i, c := range cells {
		if isMissing(c) {
			floats[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			numeric = false
			break
		}
		floats[i] = v
	}
	if numeric {
		return &Field{Type: Float, Data: floats, Pool: pool}
	}

	f := NewField(len(cells), String, pool)
	for i, c := range cells {
		f.Data[i] = float64(pool.Add(c))
	}
	return f
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func isMissing(cell string) bool {
	switch strings.ToLower(cell) {
	case "", "nan", "na", "null":
		return true
	}
	return false
}

// Has reports whether df has a column named field.
func (df *DataFrame) Has(field string) bool {
	_, ok := df.Columns[field]
	return ok
}

// Column returns the named column or an error wrapping ErrNoSuchColumn.
func (df *DataFrame) Column(field string) (*Field, error) {
	f, ok := df.Columns[field]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrNoSuchColumn, "%q in %s", field, df.Name)
	}
	return f, nil
}

// Values returns the data of the numerical column field.
func (df *DataFrame) Values(field string) ([]float64, error) {
	f, err := df.Column(field)
	if err != nil {
		return nil, err
	}
	if f.Type != Float {
		return nil, pkgerrors.Wrapf(ErrNotNumeric, "%q in %s", field, df.Name)
	}
	return f.Data, nil
}

// Filter extracts all rows from df where field==value. Value may be a string
// or any numerical type.
func Filter(df *DataFrame, field string, value interface{}) (*DataFrame, error) {
	f, err := df.Column(field)
	if err != nil {
		return nil, err
	}

	var want float64
	switch v := value.(type) {
	case string:
		if f.Type != String {
			return nil, pkgerrors.Errorf("cannot filter numerical column %q by string %q", field, v)
		}
		idx := df.Pool.Find(v)
		if idx == -1 {
			// Never seen, so nothing matches.
			return df.subset(nil), nil
		}
		want = float64(idx)
	case int:
		want = float64(v)
	case int64:
		want = float64(v)
	case float64:
		want = v
	default:
		return nil, pkgerrors.Errorf("bad filter value %v of type %T", value, value)
	}
	if _, isString := value.(string); !isString && f.Type == String {
		return nil, pkgerrors.Errorf("cannot filter string column %q by number %v", field, value)
	}

	rows := make([]int, 0, 16)
	for i, x := range f.Data {
		if x == want {
			rows = append(rows, i)
		}
	}
	return df.subset(rows), nil
}

// subset returns a new data frame consisting of the given rows of df.
func (df *DataFrame) subset(rows []int) *DataFrame {
	result := NewDataFrame(df.Name, df.Pool)
	result.N = len(rows)
	result.Order = append([]string(nil), df.Order...)
	for name, f := range df.Columns {
		nf := NewField(len(rows), f.Type, f.Pool)
		for i, r := range rows {
			nf.Data[i] = f.Data[r]
		}
		result.Columns[name] = nf
	}
	return result
}

// DropNonFinite returns the rows of df where field holds a finite value; NaN and
// infinite values are dropped.
func DropNonFinite(df *DataFrame, field string) (*DataFrame, error) {
	data, err := df.Values(field)
	if err != nil {
		return nil, err
	}
	rows := make([]int, 0, len(data))
	for i, x := range data {
		if isFinite(x) {
			rows = append(rows, i)
		}
	}
	return df.subset(rows), nil
}

// Uniques returns the distinct values of the string column field in order
// of first appearance.
func Uniques(df *DataFrame, field string) ([]string, error) {
	f, err := df.Column(field)
	if err != nil {
		return nil, err
	}
	if f.Type != String {
		return nil, pkgerrors.Wrapf(ErrNotNumeric, "%q is numerical, want string column", field)
	}
	seen := NewFloatSet()
	var uniques []string
	for _, x := range f.Data {
		if seen.Contains(x) {
			continue
		}
		seen.Add(x)
		uniques = append(uniques, f.String(x))
	}
	return uniques, nil
}

// MinMax determines the minimum and maximum value of the numerical field and
// their row indices. NaN and infinite values are ignored; mini and maxi are
// -1 if field contains no finite value.
func MinMax(df *DataFrame, field string) (min, max float64, mini, maxi int, err error) {
	data, err := df.Values(field)
	if err != nil {
		return 0, 0, -1, -1, err
	}
	min, max = math.Inf(+1), math.Inf(-1)
	mini, maxi = -1, -1
	for i, x := range data {
		if !isFinite(x) {
			continue
		}
		if x < min {
			min, mini = x, i
		}
		if x > max {
			max, maxi = x, i
		}
	}
	return min, max, mini, maxi, nil
}

// Print dumps df as a table to out.
func (df *DataFrame) Print(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s (%d rows)", df.Name, df.N))

	header := make(table.Row, len(df.Order))
	for j, name := range df.Order {
		header[j] = name
	}
	t.AppendHeader(header)

	for i := 0; i < df.N; i++ {
		row := make(table.Row, len(df.Order))
		for j, name := range df.Order {
			f := df.Columns[name]
			if f.Type == String {
				row[j] = f.String(f.Data[i])
			} else {
				row[j] = strconv.FormatFloat(f.Data[i], 'g', 6, 64)
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}
