package inmemory

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tridentsearch/trident/pkg/store"
)

// matchFilter evaluates a structured filter against a record. It supports
// the operator subset the external translator actually emits: equality,
// $gt/$gte/$lt/$lte/$ne, $in, and $regex with optional $options. Field paths
// use the store's document layout: "recordType" plus dotted paths into the
// attribute map ("attributes.city").
func matchFilter(rec store.Record, filter map[string]any) (bool, error) {
	for path, predicate := range filter {
		val, present := lookupField(rec, path)

		switch pred := predicate.(type) {
		case map[string]any:
			ok, err := matchOperators(val, present, pred)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		default:
			if !present || !valuesEqual(val, predicate) {
				return false, nil
			}
		}
	}
	return true, nil
}

func matchOperators(val any, present bool, operators map[string]any) (bool, error) {
	for op, operand := range operators {
		switch op {
		case "$gt", "$gte", "$lt", "$lte":
			if !present {
				return false, nil
			}
			cmp, ok := compareNumeric(val, operand)
			if !ok {
				return false, nil
			}
			switch op {
			case "$gt":
				if cmp <= 0 {
					return false, nil
				}
			case "$gte":
				if cmp < 0 {
					return false, nil
				}
			case "$lt":
				if cmp >= 0 {
					return false, nil
				}
			case "$lte":
				if cmp > 0 {
					return false, nil
				}
			}
		case "$ne":
			if present && valuesEqual(val, operand) {
				return false, nil
			}
		case "$in":
			options, ok := operand.([]any)
			if !ok {
				return false, fmt.Errorf("%w: $in requires an array operand", store.ErrQuery)
			}
			if !present {
				return false, nil
			}
			matched := false
			for _, option := range options {
				if valuesEqual(val, option) {
					matched = true
					break
				}
			}
			if !matched {
				return false, nil
			}
		case "$regex":
			pattern, ok := operand.(string)
			if !ok {
				return false, fmt.Errorf("%w: $regex requires a string operand", store.ErrQuery)
			}
			if opts, hasOpts := operators["$options"]; hasOpts {
				if s, ok := opts.(string); ok && strings.Contains(s, "i") {
					pattern = "(?i)" + pattern
				}
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false, fmt.Errorf("%w: %v", store.ErrQuery, err)
			}
			s, isString := val.(string)
			if !present || !isString || !re.MatchString(s) {
				return false, nil
			}
		case "$options":
			// consumed together with $regex
		default:
			return false, fmt.Errorf("%w: unsupported operator %q", store.ErrQuery, op)
		}
	}
	return true, nil
}

// lookupField resolves a filter path against a record. "recordType" (and the
// legacy "type" alias) address the category label; everything else is a
// dotted path into the attribute map, with or without the "attributes."
// prefix, descending through nested maps.
func lookupField(rec store.Record, path string) (any, bool) {
	if path == "recordType" || path == "type" {
		return rec.RecordType, true
	}

	path = strings.TrimPrefix(path, "attributes.")
	path = strings.TrimPrefix(path, "data.")

	var current any = rec.Attributes
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func valuesEqual(a, b any) bool {
	if cmp, ok := compareNumeric(a, b); ok {
		return cmp == 0
	}
	return a == b
}

// compareNumeric compares two values numerically when both are numbers,
// coercing across Go's int/float widths (JSON decoding yields float64,
// seeded attributes may carry ints).
func compareNumeric(a, b any) (int, bool) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
