package licenses

import (
	"bytes"
	"encoding/json"
)

// flexString decodes a JSON string or number into a string. License ids are
// numeric in some registry versions and strings in others. Any other JSON
// type reads as absent.
type flexString struct {
	value string
	set   bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = flexString{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*f = flexString{value: s, set: true}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		*f = flexString{value: n.String(), set: true}
	}
	return nil
}

func (f flexString) ptr() *string {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}
