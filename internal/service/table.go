package service

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Table is a report result flattened for text and CSV output.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Tabulate flattens a report result: a slice of structs, a single struct or
// a per-table count map. Columns are the json names of the struct fields.
// Floats are money or rates and are printed with two decimals.
func Tabulate(result any) Table {
	v := reflect.ValueOf(result)
	if !v.IsValid() {
		return Table{}
	}

	switch v.Kind() {
	case reflect.Map:
		return tabulateCounts(v)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Struct {
			break
		}
		t := Table{Columns: columnNames(v.Type().Elem())}
		for i := 0; i < v.Len(); i++ {
			t.Rows = append(t.Rows, rowValues(v.Index(i)))
		}
		return t
	case reflect.Struct:
		return Table{Columns: columnNames(v.Type()), Rows: [][]string{rowValues(v)}}
	}

	return Table{Columns: []string{"value"}, Rows: [][]string{{fmt.Sprint(result)}}}
}

func tabulateCounts(v reflect.Value) Table {
	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, fmt.Sprint(k.Interface()))
	}
	sort.Strings(keys)

	t := Table{Columns: []string{"table", "rows"}}
	for _, k := range keys {
		t.Rows = append(t.Rows, []string{k, cell(v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())))})
	}
	return t
}

func columnNames(t reflect.Type) []string {
	var cols []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		cols = append(cols, name)
	}
	return cols
}

func rowValues(v reflect.Value) []string {
	var row []string
	for i := 0; i < v.NumField(); i++ {
		f := v.Type().Field(i)
		if !f.IsExported() || strings.Split(f.Tag.Get("json"), ",")[0] == "-" {
			continue
		}
		row = append(row, cell(v.Field(i)))
	}
	return row
}

func cell(v reflect.Value) string {
	if d, ok := v.Interface().(decimal.Decimal); ok {
		return d.StringFixed(2)
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(v.Float()).StringFixed(2)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.String:
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}
