package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBatchShape means the record sequence could not be found in a document.
var ErrBatchShape = errors.New("unexpected batch shape")

// Array requires doc to be a JSON array.
func Array(doc any) ([]any, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrBatchShape, kind(doc))
	}
	return items, nil
}

// AtPath walks nested objects by key and requires an array at the end.
func AtPath(doc any, path ...string) ([]any, error) {
	cur := doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected an array at %s", ErrBatchShape, strings.Join(path, "/"))
		}
		cur = obj[key]
	}
	items, ok := cur.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array at %s", ErrBatchShape, strings.Join(path, "/"))
	}
	return items, nil
}

// ArrayOrKeys accepts a bare array, or an object holding an array under the
// first of keys that has one.
func ArrayOrKeys(doc any, keys ...string) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range keys {
			if items, ok := v[key].([]any); ok {
				return items, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: expected an array or an object with one of %s", ErrBatchShape, strings.Join(keys, ", "))
}

// Objects keeps the JSON objects of items and skips everything else.
func Objects(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
