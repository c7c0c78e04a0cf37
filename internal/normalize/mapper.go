package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"accessctl/pkg/models"
)

// FieldRule maps one wire field onto one canonical field.
type FieldRule struct {
	Wire      string
	Canonical string
}

// FieldTable is the declared wire to canonical correspondence of a resource.
// Several wire names may feed the same canonical field; the first one present
// in the wire record wins.
type FieldTable []FieldRule

// Apply renames the fields of a wire record. Unmapped wire fields are dropped.
// Absent or null wire fields leave the canonical field absent. Values are
// copied byte for byte.
func (t FieldTable) Apply(wire json.RawMessage) (map[string]json.RawMessage, error) {
	src, ok := object(bytes.TrimSpace(wire))
	if !ok {
		return nil, fmt.Errorf("wire record is not an object: %s", preview(wire))
	}

	out := make(map[string]json.RawMessage, len(t))
	for _, rule := range t {
		if _, done := out[rule.Canonical]; done {
			continue
		}
		v, ok := src[rule.Wire]
		if !ok || isNull(bytes.TrimSpace(v)) {
			continue
		}
		out[rule.Canonical] = v
	}
	return out, nil
}

// MapRecord applies t to a wire record and decodes the result into T.
func MapRecord[T any](t FieldTable, wire json.RawMessage) (T, error) {
	var rec T
	canonical, err := t.Apply(wire)
	if err != nil {
		return rec, err
	}
	b, err := json.Marshal(canonical)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(b, &rec); err != nil {
		return rec, fmt.Errorf("decode canonical record: %w", err)
	}
	return rec, nil
}

// MapAll maps every wire record in order. A record that fails is reported in
// the returned errors and the remaining records are still mapped.
func MapAll[T any](t FieldTable, wire []json.RawMessage) ([]T, []models.RecordError) {
	return collect(wire, func(raw json.RawMessage) (T, error) {
		return MapRecord[T](t, raw)
	})
}

// Decode reads a record whose wire and canonical shapes coincide.
func Decode[T any](wire json.RawMessage) (T, error) {
	var rec T
	if _, ok := object(bytes.TrimSpace(wire)); !ok {
		return rec, fmt.Errorf("wire record is not an object: %s", preview(wire))
	}
	if err := json.Unmarshal(wire, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// DecodeAll is MapAll for resources that need no renaming.
func DecodeAll[T any](wire []json.RawMessage) ([]T, []models.RecordError) {
	return collect(wire, Decode[T])
}

func collect[T any](wire []json.RawMessage, fn func(json.RawMessage) (T, error)) ([]T, []models.RecordError) {
	records := make([]T, 0, len(wire))
	var rejected []models.RecordError
	for i, raw := range wire {
		rec, err := fn(raw)
		if err != nil {
			rejected = append(rejected, models.RecordError{Index: i, Err: err.Error()})
			continue
		}
		records = append(records, rec)
	}
	return records, rejected
}

func preview(raw []byte) string {
	const limit = 40
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
