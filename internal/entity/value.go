package entity

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Kind tags an extracted field value so downstream scoring and validation
// can branch on what the value represents instead of sniffing strings.
type Kind string

const (
	KindText   Kind = "text"
	KindDate   Kind = "date"
	KindNumber Kind = "number"
	KindFlag   Kind = "flag"
)

// Value is a single extracted field value. Extraction transforms decide the
// kind; the JSON form stays a bare string so persisted results keep the flat
// field->string shape callers already consume.
type Value struct {
	Kind Kind
	Raw  string
}

func Text(s string) Value   { return Value{Kind: KindText, Raw: s} }
func Date(s string) Value   { return Value{Kind: KindDate, Raw: s} }
func Number(s string) Value { return Value{Kind: KindNumber, Raw: s} }
func Flag(s string) Value   { return Value{Kind: KindFlag, Raw: s} }

func (v Value) String() string { return v.Raw }
func (v Value) Empty() bool    { return v.Raw == "" }

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw)
}

var (
	reDateLike   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	reNumberLike = regexp.MustCompile(`^\d+$`)
)

// InferValue tags a bare string with the most specific kind it matches:
// exact MM/DD/YYYY strings become dates, all-digit strings numbers.
func InferValue(s string) Value {
	switch {
	case reDateLike.MatchString(s):
		return Date(s)
	case reNumberLike.MatchString(s):
		return Number(s)
	case s == "true" || s == "false":
		return Flag(s)
	default:
		return Text(s)
	}
}

// UnmarshalJSON re-infers the kind from the stored string. Persisted blobs
// carry no kind tag, so the round trip is best effort.
func (v *Value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = InferValue(s)
	return nil
}

// FieldMap is the extracted field set keyed by field name. Required fields
// that did not match are present with an empty value, never omitted.
type FieldMap map[string]Value

// StringMap flattens the field map to plain strings.
func (m FieldMap) StringMap() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.Raw
	}
	return out
}

// FieldMapFromStrings lifts caller-supplied strings (manual entry,
// corrections) into a field map, trimming surrounding whitespace.
func FieldMapFromStrings(in map[string]string) FieldMap {
	out := make(FieldMap, len(in))
	for k, v := range in {
		out[k] = InferValue(strings.TrimSpace(v))
	}
	return out
}
