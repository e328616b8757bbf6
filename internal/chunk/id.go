package chunk

import (
	"encoding/json"
	"strconv"
)

// ModuleID is the opaque identifier a chunk uses to register and instantiate
// a specific module at runtime. It is scoped to a chunking context and is
// either a string or a number on the wire.
type ModuleID struct {
	str     string
	num     uint32
	numeric bool
}

// StringID creates a string-valued module id.
func StringID(s string) ModuleID {
	return ModuleID{str: s}
}

// NumberID creates a numeric module id.
func NumberID(n uint32) ModuleID {
	return ModuleID{num: n, numeric: true}
}

// String returns the id in its display form.
func (id ModuleID) String() string {
	if id.numeric {
		return strconv.FormatUint(uint64(id.num), 10)
	}
	return id.str
}

// MarshalJSON writes the id as a JSON number or string, preserving its kind.
func (id ModuleID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return json.Marshal(id.num)
	}
	return json.Marshal(id.str)
}

// UnmarshalJSON reads either a JSON number or string.
func (id *ModuleID) UnmarshalJSON(data []byte) error {
	var n uint32
	if err := json.Unmarshal(data, &n); err == nil {
		*id = NumberID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = StringID(s)
	return nil
}
