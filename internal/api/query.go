package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single query parameter
type Param struct {
	Key   string
	Value any
}

// Query describes one widget service request: a path plus ordered parameters.
// Parameters keep the order in which they were added.
type Query struct {
	path     string
	params   []Param
	required []bool
}

// NewQuery starts a query for the given endpoint path
func NewQuery(path string) *Query {
	return &Query{path: path}
}

// Require adds a parameter that must be present
func (q *Query) Require(key string, value any) *Query {
	q.params = append(q.params, Param{Key: key, Value: value})
	q.required = append(q.required, true)
	return q
}

// Optional adds a parameter that is omitted when absent or numerically zero
func (q *Query) Optional(key string, value any) *Query {
	q.params = append(q.params, Param{Key: key, Value: value})
	q.required = append(q.required, false)
	return q
}

// Path returns the endpoint path
func (q *Query) Path() string {
	return q.path
}

// URL renders the request URL against base. A required parameter that is
// absent yields a ValidationError matching ErrMissingParameter.
func (q *Query) URL(base string) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteByte('/')
	b.WriteString(strings.TrimLeft(q.path, "/"))

	sep := byte('?')
	for i, p := range q.params {
		value, ok := formatValue(p.Value)
		if !ok {
			if q.required[i] {
				return "", ErrMissingField(p.Key)
			}
			continue
		}
		if !q.required[i] && isZeroNumber(p.Value) {
			continue
		}
		b.WriteByte(sep)
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
		sep = '&'
	}
	return b.String(), nil
}

// BuildURL is the function form of Query: required parameters first, then
// optional ones, each in the given order.
func BuildURL(base, path string, required, optional []Param) (string, error) {
	q := NewQuery(path)
	for _, p := range required {
		q.Require(p.Key, p.Value)
	}
	for _, p := range optional {
		q.Optional(p.Key, p.Value)
	}
	return q.URL(base)
}

// formatValue renders v as a query value. It reports false for absent
// values: nil, nil pointers and empty strings. Zero numbers are values.
func formatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, x != ""
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", false
		}
		s := x.String()
		return s, s != ""
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return formatValue(rv.Elem().Interface())
	}
	s := fmt.Sprint(v)
	return s, s != ""
}

func isZeroNumber(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}
