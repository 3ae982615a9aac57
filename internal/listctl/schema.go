package listctl

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/adminboard/internal/pagination"
)

// Kind is the primitive type of a field.
type Kind int

const (
	// KindString holds free text.
	KindString Kind = iota
	// KindInteger holds whole numbers, stored as int.
	KindInteger
	// KindDecimal holds decimal numbers, stored as float64.
	KindDecimal
)

// IsNumeric reports whether values of this kind must parse as numbers.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindDecimal
}

// DeriveFunc computes a field value from the stored fields of a record.
type DeriveFunc func(r Record) any

// Field describes one attribute of an entity.
type Field struct {
	// Name is the record key.
	Name string
	// Label is the column heading and form label.
	Label string
	Kind  Kind
	// Required fields must be non-empty when a record is created.
	Required bool
	// Searchable fields take part in free-text queries.
	Searchable bool
	// Editable fields accept inline edits after creation.
	Editable bool
	// Default is used on create when an optional field is left empty.
	Default func() any
	// Derive marks a computed field; it is never stored or accepted as input
	// and is recomputed on every read.
	Derive DeriveFunc
}

// IsDerived reports whether the field is computed rather than stored.
func (f Field) IsDerived() bool {
	return f.Derive != nil
}

// Schema describes one entity kind managed by a Controller.
type Schema struct {
	// Name is the collection name ("users").
	Name string
	// Singular is the display noun ("User").
	Singular string
	// TitleField names the field used to refer to a record in messages.
	TitleField string
	Fields     []Field
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// SearchFields returns the names of searchable fields in schema order.
func (s *Schema) SearchFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Searchable {
			names = append(names, f.Name)
		}
	}
	return names
}

// InputFields returns the fields a create form collects: every stored field.
func (s *Schema) InputFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if !f.IsDerived() {
			out = append(out, f)
		}
	}
	return out
}

// EditableFields returns the fields that accept inline edits.
func (s *Schema) EditableFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Editable && !f.IsDerived() {
			out = append(out, f)
		}
	}
	return out
}

// NumericFields returns the fields whose input must parse as a number.
func (s *Schema) NumericFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Kind.IsNumeric() && !f.IsDerived() {
			out = append(out, f)
		}
	}
	return out
}

// Title returns the text used to name r in messages.
func (s *Schema) Title(r Record) string {
	if title := r.Text(s.TitleField); title != "" {
		return title
	}
	return r.ID()
}

// Resolve returns r with every derived field computed from its current
// stored values.
func (s *Schema) Resolve(r Record) Record {
	for _, f := range s.Fields {
		if f.IsDerived() {
			r = r.With(f.Name, f.Derive(r))
		}
	}
	return r
}

// Parse converts raw text input into a typed value for field f.
// Failures are returned as *FieldError.
func (f Field) Parse(text string) (any, error) {
	text = strings.TrimSpace(text)
	switch f.Kind {
	case KindInteger:
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		// Fractional input is truncated toward zero.
		fl, ferr := strconv.ParseFloat(text, 64)
		if (ferr != nil && !errors.Is(ferr, strconv.ErrRange)) || math.IsNaN(fl) {
			return nil, &FieldError{Field: f.Name, Reason: ReasonNotNumber}
		}
		fl = math.Trunc(fl)
		if math.IsInf(fl, 0) || fl >= math.MaxInt || fl < math.MinInt {
			return nil, &FieldError{Field: f.Name, Reason: ReasonOutOfRange}
		}
		return int(fl), nil
	case KindDecimal:
		fl, err := strconv.ParseFloat(text, 64)
		if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(fl) {
			return nil, &FieldError{Field: f.Name, Reason: ReasonNotNumber}
		}
		if math.IsInf(fl, 0) {
			return nil, &FieldError{Field: f.Name, Reason: ReasonOutOfRange}
		}
		return fl, nil
	default:
		return text, nil
	}
}

// compareValues orders two field values: numbers numerically, everything
// else as case-insensitive text. Missing values sort first.
func compareValues(a, b Record, field string) int {
	an, aok := a.Number(field)
	bn, bok := b.Number(field)
	if aok && bok {
		return cmp.Compare(an, bn)
	}
	return strings.Compare(strings.ToLower(a.Text(field)), strings.ToLower(b.Text(field)))
}

// newSorter builds a sorter covering "id" and every schema field.
func (s *Schema) newSorter() *pagination.Sorter[Record] {
	fields := map[string]pagination.CompareFunc[Record]{
		IDField: func(a, b Record) int { return compareIDs(a.ID(), b.ID()) },
	}
	for _, f := range s.Fields {
		name := f.Name
		fields[name] = func(a, b Record) int { return compareValues(a, b, name) }
	}
	return pagination.NewSorter(fields)
}

// compareIDs orders numeric ids numerically and falls back to text order.
func compareIDs(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(an, bn)
	}
	return strings.Compare(a, b)
}
