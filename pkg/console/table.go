package console

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	indexColumn = "(index)"
	valueColumn = "Value"
)

type tableRow struct {
	index  string
	cells  map[string]string
	scalar bool
}

// renderTable lays out data as console.table does: one row per element of a
// slice, array or map, one column per key or exported field of the elements.
// Scalars go to a "Value" column. It reports false when data is not tabular.
func renderTable(data any, columns []string) (string, bool) {
	v := reflect.Indirect(reflect.ValueOf(data))
	if !v.IsValid() {
		return "", false
	}

	var rows []tableRow
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			rows = append(rows, newTableRow(fmt.Sprint(i), v.Index(i)))
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			rows = append(rows, newTableRow(fmt.Sprint(k.Interface()), v.MapIndex(k)))
		}
	case reflect.Struct:
		rows = append(rows, newTableRow("0", v))
	default:
		return "", false
	}

	if columns == nil {
		columns = collectColumns(rows)
	}
	scalars := false
	for _, r := range rows {
		scalars = scalars || r.scalar
	}

	header := append([]string{indexColumn}, columns...)
	if scalars {
		header = append(header, valueColumn)
	}

	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(header)
	for _, r := range rows {
		line := make([]string, 0, len(header))
		line = append(line, r.index)
		for _, c := range columns {
			line = append(line, r.cells[c])
		}
		if scalars {
			line = append(line, r.cells[valueColumn])
		}
		tw.Append(line)
	}
	tw.Render()
	return strings.TrimRight(b.String(), "\n"), true
}

func newTableRow(index string, v reflect.Value) tableRow {
	row := tableRow{index: index, cells: map[string]string{}}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			row.scalar = true
			row.cells[valueColumn] = "<nil>"
			return row
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			row.cells[fmt.Sprint(k.Interface())] = fmt.Sprint(v.MapIndex(k).Interface())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			row.cells[t.Field(i).Name] = fmt.Sprint(v.Field(i).Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			row.cells[fmt.Sprint(i)] = fmt.Sprint(v.Index(i).Interface())
		}
	default:
		row.scalar = true
		row.cells[valueColumn] = fmt.Sprint(v.Interface())
	}
	return row
}

// collectColumns returns the non-scalar keys in first-seen order, each row's
// keys sorted.
func collectColumns(rows []tableRow) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range rows {
		if r.scalar {
			continue
		}
		keys := make([]string, 0, len(r.cells))
		for k := range r.cells {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	return cols
}
