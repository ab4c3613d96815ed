package models

import (
	"bytes"
	"encoding/json"
)

// List decodes a collection that the widget service encodes as a single
// object when it holds one record and as an array when it holds several.
type List[T any] []T

// UnmarshalJSON accepts null, a single value, or an array of values.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*l = List[T]{item}
	return nil
}
