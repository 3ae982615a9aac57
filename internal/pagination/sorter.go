package pagination

import (
	"fmt"
	"slices"
	"sort"
)

// CompareFunc orders two items: negative if a sorts before b, zero if equal,
// positive otherwise.
type CompareFunc[T any] func(a, b T) int

// Sorter sorts items by a named field using per-field comparators.
type Sorter[T any] struct {
	fields map[string]CompareFunc[T]
}

// NewSorter creates a Sorter with the given field comparators.
func NewSorter[T any](fields map[string]CompareFunc[T]) *Sorter[T] {
	copied := make(map[string]CompareFunc[T], len(fields))
	for name, cmp := range fields {
		copied[name] = cmp
	}
	return &Sorter[T]{fields: copied}
}

// IsValidField checks if the field can be sorted on.
func (s *Sorter[T]) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// GetValidFields returns all sortable field names in a consistent order.
func (s *Sorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate reports ErrInvalidSortField for unknown fields. The empty field
// means "no sort" and is always valid.
func (s *Sorter[T]) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, s.GetValidFields())
}

// Sort returns a stably sorted copy of items; the input is not modified.
// An unknown or empty field returns the items unchanged.
func (s *Sorter[T]) Sort(items []T, field, order string) []T {
	cmp, ok := s.fields[field]
	if !ok {
		return items
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if order == SortOrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted
}
