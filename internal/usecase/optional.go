package usecase

import "encoding/json"

// Optional is a tri-state field for partial-update payloads. It separates
// "absent from the payload" (Set == false) from "present with null"
// (Set && !Valid) from "present with a value" (Set && Valid). Patch
// application only touches fields with Set == true; null clears nullable
// fields and is rejected for non-nullable ones.
type Optional[T any] struct {
	Value T
	Valid bool // true when a non-null value was supplied
	Set   bool // true when the field appeared in the payload at all
}

// UnmarshalJSON is only invoked for fields present in the payload, which is
// what makes the absent/null distinction possible.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true

	return nil
}

// MarshalJSON round-trips the field; absent and null both encode as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// Some builds a present, non-null Optional. Mostly useful in tests.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Valid: true, Set: true}
}

// Null builds a present-but-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
