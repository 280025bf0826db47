// Package form encodes parameter structs into Stripe's bracket-nested
// application/x-www-form-urlencoded representation.
//
// Fields are selected and named by `form` struct tags. Optional fields are
// pointers; a nil pointer emits no key at all. Nested structs emit
// parent[child] keys, slices emit key[0], key[1], ... and maps emit
// key[mapkey] in sorted key order so output is deterministic.
package form

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Appender is implemented by types that take over their own encoding, such as
// untagged sums whose wire form depends on the active variant.
type Appender interface {
	AppendTo(values *Values, keyParts []string)
}

var appenderType = reflect.TypeOf((*Appender)(nil)).Elem()

type pair struct {
	key   string
	value string
}

// Values is an ordered collection of key/value pairs. Unlike url.Values,
// insertion order is preserved, which keeps encoding a pure function of the
// parameter struct's declared field order.
type Values struct {
	pairs []pair
}

// Add appends a key/value pair.
func (v *Values) Add(key, value string) {
	v.pairs = append(v.pairs, pair{key: key, value: value})
}

// Len returns the number of pairs added so far.
func (v *Values) Len() int {
	return len(v.pairs)
}

// Get returns every value recorded under key, in insertion order.
func (v *Values) Get(key string) []string {
	var out []string
	for _, p := range v.pairs {
		if p.key == key {
			out = append(out, p.value)
		}
	}
	return out
}

// Encode serializes the pairs as a URL-encoded query/body string.
func (v *Values) Encode() string {
	var sb strings.Builder
	for i, p := range v.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

// FormatKey assembles key parts into Stripe's bracket notation: the first
// part is bare, every subsequent part is bracketed.
func FormatKey(parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	key := parts[0]
	for _, part := range parts[1:] {
		key += "[" + part + "]"
	}
	return key
}

// Encode encodes params into a fresh Values. params must be a struct or a
// pointer to one.
func Encode(params interface{}) (*Values, error) {
	values := &Values{}
	rv := reflect.ValueOf(params)
	if !rv.IsValid() {
		return values, nil
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return values, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("form: cannot encode %s as parameters", rv.Kind())
	}

	appendStruct(values, rv, nil)
	return values, nil
}

// AppendTo encodes v beneath the provided key parts. It is the hook Appender
// implementations use to delegate encoding of their active variant.
func AppendTo(values *Values, v interface{}, keyParts []string) {
	appendValue(values, reflect.ValueOf(v), keyParts)
}

func appendValue(values *Values, rv reflect.Value, keyParts []string) {
	if !rv.IsValid() {
		return
	}
	if rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return
		}
	}

	if rv.Type().Implements(appenderType) {
		rv.Interface().(Appender).AppendTo(values, keyParts)
		return
	}
	if rv.CanAddr() && rv.Addr().Type().Implements(appenderType) {
		rv.Addr().Interface().(Appender).AppendTo(values, keyParts)
		return
	}

	switch rv.Kind() {
	case reflect.Ptr:
		elem := rv.Elem()
		if elem.Kind() == reflect.Struct && !elem.Type().Implements(appenderType) {
			// An explicitly set empty sub-record still needs its key on the
			// wire; Stripe reads the bare key as method selection.
			before := values.Len()
			appendStruct(values, elem, keyParts)
			if values.Len() == before && len(keyParts) > 0 {
				values.Add(FormatKey(keyParts), "")
			}
			return
		}
		appendValue(values, elem, keyParts)

	case reflect.Interface:
		appendValue(values, rv.Elem(), keyParts)

	case reflect.Struct:
		appendStruct(values, rv, keyParts)

	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, fmt.Sprintf("%v", k.Interface()))
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendValue(values, rv.MapIndex(reflect.ValueOf(k)), append(keyParts, k))
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendValue(values, rv.Index(i), append(keyParts, strconv.Itoa(i)))
		}

	case reflect.String:
		values.Add(FormatKey(keyParts), rv.String())

	case reflect.Bool:
		values.Add(FormatKey(keyParts), strconv.FormatBool(rv.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		values.Add(FormatKey(keyParts), strconv.FormatInt(rv.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		values.Add(FormatKey(keyParts), strconv.FormatUint(rv.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		values.Add(FormatKey(keyParts), strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	}
}

func appendStruct(values *Values, rv reflect.Value, keyParts []string) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get("form")
		if tag == "-" {
			continue
		}
		if tag == "" {
			// Untagged embedded structs are inlined at the current level.
			if field.Anonymous {
				appendValue(values, rv.Field(i), keyParts)
			}
			continue
		}

		appendValue(values, rv.Field(i), append(keyParts, tag))
	}
}
