package logctx

import "fmt"

// Field is a single key/value pair carried by a context frame.
type Field struct {
	// Key is the field name as it appears in emitted log records.
	Key string
	// Value is an arbitrary loggable value.
	Value any
}

// newFrame builds an ordered frame from a flat list of key/value pairs,
// following the convention of zap's sugared logger ("key", value, ...).
// A key repeated within the same call keeps its original position and takes
// the last value. Non-string keys are stringified, a trailing key without a
// value is dropped.
func newFrame(kvs []any) []Field {
	if len(kvs) == 0 {
		return nil
	}

	fields := make([]Field, 0, len(kvs)/2)
	index := make(map[string]int, len(kvs)/2)

	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprint(kvs[i])
		}

		if at, seen := index[key]; seen {
			fields[at].Value = kvs[i+1]
			continue
		}

		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: kvs[i+1]})
	}

	return fields
}

// mergeFields layers overlay on top of base. A key keeps the position of its
// first appearance and takes the overlay's value on collision; keys seen only
// in the overlay are appended in order. Neither input is modified.
func mergeFields(base, overlay []Field) []Field {
	if len(base) == 0 {
		return append([]Field(nil), overlay...)
	}

	if len(overlay) == 0 {
		return append([]Field(nil), base...)
	}

	merged := make([]Field, len(base), len(base)+len(overlay))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, field := range merged {
		index[field.Key] = i
	}

	for _, field := range overlay {
		if at, seen := index[field.Key]; seen {
			merged[at].Value = field.Value
			continue
		}

		index[field.Key] = len(merged)
		merged = append(merged, field)
	}

	return merged
}

// Merge layers a frame built from kvs on top of the given fields and returns
// the combined ordered field list. The kvs pairs win on key collision.
func Merge(fields []Field, kvs ...any) []Field {
	return mergeFields(fields, newFrame(kvs))
}

// Flatten converts fields back into the flat key/value list accepted by
// zap's sugared logger.
func Flatten(fields []Field) []any {
	if len(fields) == 0 {
		return nil
	}

	kvs := make([]any, 0, len(fields)*2)
	for _, field := range fields {
		kvs = append(kvs, field.Key, field.Value)
	}

	return kvs
}
