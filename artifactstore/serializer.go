package artifactstore

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/webdriverkit/screenshot-reporter/metadata"
)

// encodeRecords serializes records as indented JSON. Host-supplied detail
// values are sanitized first, so a self-referential structure inherited from
// the host cannot fail the encoder.
func encodeRecords(records []metadata.Record) ([]byte, error) {
	sanitized := make([]metadata.Record, len(records))
	for i, record := range records {
		record.Details = Sanitize(record.Details)
		sanitized[i] = record
	}
	return json.MarshalIndent(sanitized, "", "  ")
}

func encodeRecord(record metadata.Record) ([]byte, error) {
	record.Details = Sanitize(record.Details)
	return json.MarshalIndent(record, "", "  ")
}

// Sanitize returns a JSON-encodable copy of value: cyclic references are
// replaced with nil, map keys are stringified and unexported struct fields
// are dropped.
func Sanitize(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	return sanitizeValue(reflect.ValueOf(value), map[uintptr]bool{})
}

func sanitizeValue(v reflect.Value, visiting map[uintptr]bool) interface{} {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return sanitizeValue(v.Elem(), visiting)
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if visiting[ptr] {
			return nil
		}
		visiting[ptr] = true
		defer delete(visiting, ptr)
		return sanitizeValue(v.Elem(), visiting)
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if visiting[ptr] {
			return nil
		}
		visiting[ptr] = true
		defer delete(visiting, ptr)

		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = sanitizeValue(iter.Value(), visiting)
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Bytes()
		}
		ptr := v.Pointer()
		if visiting[ptr] {
			return nil
		}
		visiting[ptr] = true
		defer delete(visiting, ptr)
		return sanitizeSequence(v, visiting)
	case reflect.Array:
		return sanitizeSequence(v, visiting)
	case reflect.Struct:
		return sanitizeStruct(v, visiting)
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil
	default:
		return v.Interface()
	}
}

func sanitizeSequence(v reflect.Value, visiting map[uintptr]bool) []interface{} {
	out := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = sanitizeValue(v.Index(i), visiting)
	}
	return out
}

func sanitizeStruct(v reflect.Value, visiting map[uintptr]bool) map[string]interface{} {
	t := v.Type()
	out := make(map[string]interface{})
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name := field.Name
		omitEmpty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}

		if omitEmpty && v.Field(i).IsZero() {
			continue
		}
		out[name] = sanitizeValue(v.Field(i), visiting)
	}
	return out
}
