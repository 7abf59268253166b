package store

import (
	"bytes"
	"encoding/json"
)

// Nullable is a JSON field that distinguishes "absent", "null" and a value.
// Absent leaves a column unchanged on update; null clears it.
type Nullable[T any] struct {
	Value T
	Null  bool
	Set   bool
}

// NullableOf returns a Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

// Ptr returns nil for null, otherwise a pointer to the value.
func (n Nullable[T]) Ptr() *T {
	if n.Null {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
