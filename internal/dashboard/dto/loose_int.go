package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// LooseInt decodes a JSON number or a numeric string. Any other value,
// including null, decodes to 0 without error so that defaults apply.
type LooseInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *LooseInt) UnmarshalJSON(data []byte) error {
	*i = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return nil
	}
	*i = LooseInt(int(f))
	return nil
}

// Int returns the decoded value.
func (i LooseInt) Int() int {
	return int(i)
}
