package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// LooseBool unmarshals any JSON value by its truthiness: false, 0, "",
// and null decode to false, everything else to true. The backend has been
// observed returning 0/1 and quoted booleans for flags, so decoding stays
// permissive rather than failing the whole payload.
type LooseBool bool

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	switch s := strings.TrimSpace(string(data)); s {
	case "null", "false":
		*b = false
		return nil
	case "true":
		*b = true
		return nil
	default:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*b = n != 0
			return nil
		}
		var str string
		if err := json.Unmarshal(data, &str); err == nil {
			*b = str != ""
			return nil
		}
		// Objects and arrays are truthy.
		*b = true
		return nil
	}
}

const isoDateLayout = "2006-01-02T15:04:05"

// parseISODate accepts both zoned and naive ISO 8601 timestamps. An
// unparseable value yields the zero time instead of an error, mirroring the
// tolerant hydration policy for server-owned fields.
func parseISODate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatISODate(t time.Time) string {
	return t.Format(time.RFC3339)
}
