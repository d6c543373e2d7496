package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// String returns the trimmed string at key, or "" when absent or not a string.
func String(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

// ID returns the textual form of an identifier field. Numbers keep their
// literal text and strings are trimmed; anything else yields "".
func ID(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case json.Number:
		return v.String()
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Int reads a counter. Missing, null and non-numeric values count as 0, and
// fractional values are truncated.
func Int(obj map[string]any, key string) int {
	switch v := obj[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

// Object returns the nested object at key, or nil.
func Object(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}

// Strings collects the string elements of the array at key.
func Strings(obj map[string]any, key string) []string {
	items, _ := obj[key].([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Names collects the labels of the array at key, where each element is either
// a string or an object with a non-empty "name".
func Names(obj map[string]any, key string) []string {
	items, _ := obj[key].([]any)
	var out []string
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if name := ID(v, "name"); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// Decode parses a JSON document keeping numbers as json.Number.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
