package dto

import "encoding/json"

// Optional distinguishes a field that was absent from a PATCH body from one
// that was explicitly set to null. Absent fields leave the stored value
// unchanged; null clears it (where the field is nullable).
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
