package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// EquipmentType codes stored in jsis_records.jsis_type.
// Unrecognized codes are passed through to the report as-is.
const (
	TypeAC         = "ac"
	TypeHeatPump   = "heatpump"
	TypeGasFurnace = "gasfurnace"
)

// Record is an immutable snapshot of one jsis_records row: a flat
// field-key → value mapping as fetched from the database (string,
// numeric, boolean or nil values).
type Record map[string]any

// Present reports whether a field holds a renderable value.
// A field is present iff it is non-nil and non-empty; the literal zero
// (0 or "0") is a meaningful reading and counts as present.
// A false boolean (unchecked toggle) is absent.
func (r Record) Present(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case float64, float32, int, int32, int64:
		return true
	default:
		return Str(v) != ""
	}
}

// AnyPresent reports whether at least one of the keys is present.
// Sections gate on this: a group with no populated field renders nothing.
func (r Record) AnyPresent(keys ...string) bool {
	for _, k := range keys {
		if r.Present(k) {
			return true
		}
	}
	return false
}

// Str returns the display form of a field, "" when absent.
func (r Record) Str(key string) string {
	if !r.Present(key) {
		return ""
	}
	return Str(r[key])
}

// Truthy reports whether a toggle field is set. Database drivers hand
// checkbox columns back as bool, int or numeric string depending on the
// column type, so all of those are accepted.
func (r Record) Truthy(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "0" && t != "false"
	case float64:
		return t != 0
	case int64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

// AdditionalPhotos decodes the ordered photo_additional JSON array.
// A missing or malformed column yields an empty list.
func (r Record) AdditionalPhotos() []string {
	raw := r.Str("photo_additional")
	if raw == "" {
		return nil
	}
	var photos []string
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil
	}
	return photos
}

// Str formats a raw field value for display.
func Str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "1"
		}
		return "0"
	case []byte:
		return string(t)
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// RecordSummary is the flattened listing row used by the admin export.
type RecordSummary struct {
	RecordID      int64
	JSISType      string
	TechName      string
	TechEmail     string
	CompanyName   string
	HomeownerName string
	ServiceDate   string
	Status        string
	SubmittedAt   string
}
