package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// setFieldValue stores the submitted values in field. Pointers are allocated
// on demand, slices take every value, scalars take the first one.
func setFieldValue(field reflect.Value, typ reflect.Type, values []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(typ.Elem()))
		}
		return setFieldValue(field.Elem(), typ.Elem(), values)
	case reflect.Slice:
		return setSliceValue(field, typ, values)
	}
	if len(values) == 0 {
		return nil
	}
	return setScalar(field, typ, values[0])
}

func setScalar(field reflect.Value, typ reflect.Type, raw string) error {
	var err error
	switch typ.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(raw, 10, typ.Bits()); err == nil {
			field.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		if n, err = strconv.ParseUint(raw, 10, typ.Bits()); err == nil {
			field.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(raw, typ.Bits()); err == nil {
			field.SetFloat(f)
		}
	case reflect.Bool:
		var b bool
		if b, err = parseCheckbox(raw); err == nil {
			field.SetBool(b)
		}
	default:
		return fmt.Errorf("unsupported field type %s", typ)
	}
	if err != nil {
		return fmt.Errorf("invalid %s value %q", typ.Kind(), raw)
	}
	return nil
}

// parseCheckbox accepts strconv.ParseBool input plus the values browsers and
// people send for checkboxes.
func parseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// setSliceValue splits comma-separated entries, so tags=a,b&tags=c yields
// three elements.
func setSliceValue(field reflect.Value, typ reflect.Type, values []string) error {
	var parts []string
	for _, v := range values {
		for p := range strings.SplitSeq(v, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	slice := reflect.MakeSlice(typ, len(parts), len(parts))
	for i, p := range parts {
		if err := setFieldValue(slice.Index(i), typ.Elem(), []string{p}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
