package listctl

import (
	"encoding/json"
	"maps"
	"strconv"
)

// IDField is the reserved field name holding a record's identifier.
const IDField = "id"

// Record is one entity in a collection: an immutable id plus primitive
// business fields (string, int, or float64). Records are values; every
// change produces a new Record.
type Record struct {
	id     string
	fields map[string]any
}

// NewRecord creates a record. The fields map is copied; an "id" entry in it
// is ignored in favor of id.
func NewRecord(id string, fields map[string]any) Record {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == IDField {
			continue
		}
		copied[k] = v
	}
	return Record{id: id, fields: copied}
}

// ID returns the record identifier.
func (r Record) ID() string {
	return r.id
}

// Get returns the raw value of field. The id is reachable as "id".
func (r Record) Get(field string) (any, bool) {
	if field == IDField {
		return r.id, true
	}
	v, ok := r.fields[field]
	return v, ok
}

// Text returns field formatted as display text, or "" if absent.
func (r Record) Text(field string) string {
	v, ok := r.Get(field)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// Number returns field as a float64 when it holds a numeric value.
func (r Record) Number(field string) (float64, bool) {
	v, ok := r.Get(field)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// With returns a copy of r with field set to value. Setting "id" is ignored:
// ids are immutable once assigned.
func (r Record) With(field string, value any) Record {
	if field == IDField {
		return r
	}
	next := Record{id: r.id, fields: maps.Clone(r.fields)}
	if next.fields == nil {
		next.fields = make(map[string]any, 1)
	}
	next.fields[field] = value
	return next
}

// Fields returns a copy of all fields including "id".
func (r Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields)+1)
	maps.Copy(out, r.fields)
	out[IDField] = r.id
	return out
}

// MarshalJSON encodes the record as a flat object.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// MarshalYAML encodes the record as a flat mapping.
func (r Record) MarshalYAML() (any, error) {
	return r.Fields(), nil
}

// FormatValue renders a primitive field value as text.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
