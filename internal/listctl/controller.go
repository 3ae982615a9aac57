// Package listctl implements the list controller behind the Users and
// Products pages: free-text filtering, pagination, sorting, and local
// add/delete/update over an in-memory collection, plus a single inline edit
// buffer.
//
// A Controller is owned by one page and is not safe for concurrent use.
// Every operation completes synchronously; callers re-read Paged after each
// mutation to re-render.
package listctl

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/adminboard/internal/notify"
	"github.com/rshade/adminboard/internal/pagination"
)

// Page is one rendered page of the filtered collection.
type Page struct {
	pagination.Meta `yaml:",inline"`

	Rows  []Record          `json:"rows"  yaml:"rows"`
	Links []pagination.Link `json:"links" yaml:"links"`
	Query string            `json:"query" yaml:"query"`
}

// Controller owns a collection plus its query, page, sort, and edit state.
type Controller struct {
	schema  *Schema
	records []Record

	query      string
	page       int
	pageSize   int
	windowSize int

	sorter    *pagination.Sorter[Record]
	sortField string
	sortOrder string

	edit *EditBuffer

	ids      IDGenerator
	notifier notify.Sink
	logger   zerolog.Logger
	now      func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the fixed number of rows per page.
func WithPageSize(n int) Option {
	return func(c *Controller) { c.pageSize = n }
}

// WithWindowSize sets how many page links surround the current page.
func WithWindowSize(n int) Option {
	return func(c *Controller) { c.windowSize = n }
}

// WithIDGenerator sets the id strategy for new records.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) { c.ids = g }
}

// WithNotifier sets the sink receiving user feedback.
func WithNotifier(s notify.Sink) Option {
	return func(c *Controller) { c.notifier = s }
}

// WithLogger sets the logger for mutation traces.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller seeded with records. Seed ids must be unique.
func New(schema *Schema, seed []Record, opts ...Option) (*Controller, error) {
	if schema == nil {
		return nil, fmt.Errorf("listctl: nil schema")
	}

	c := &Controller{
		schema:     schema,
		page:       pagination.DefaultPage,
		pageSize:   pagination.DefaultPageSize,
		windowSize: pagination.DefaultWindowSize,
		sorter:     schema.newSorter(),
		sortOrder:  pagination.SortOrderAsc,
		ids:        &SequenceGenerator{},
		notifier:   notify.Discard,
		logger:     zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = notify.Discard
	}
	if c.ids == nil {
		c.ids = &SequenceGenerator{}
	}

	if c.pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.pageSize)
	}

	seen := make(map[string]struct{}, len(seed))
	c.records = make([]Record, 0, len(seed))
	for _, r := range seed {
		if _, dup := seen[r.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID())
		}
		seen[r.ID()] = struct{}{}
		c.records = append(c.records, r)
	}
	if o, ok := c.ids.(Observer); ok {
		o.Observe(c.records)
	}

	return c, nil
}

// Schema returns the entity schema.
func (c *Controller) Schema() *Schema {
	return c.schema
}

// Len returns the size of the whole collection.
func (c *Controller) Len() int {
	return len(c.records)
}

// PageSize returns the fixed page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Records returns the whole collection in order with derived fields resolved.
func (c *Controller) Records() []Record {
	out := make([]Record, len(c.records))
	for i, r := range c.records {
		out[i] = c.schema.Resolve(r)
	}
	return out
}

// Get returns the record with id.
func (c *Controller) Get(id string) (Record, error) {
	i := c.indexOf(id)
	if i < 0 {
		return Record{}, &NotFoundError{ID: id}
	}
	return c.schema.Resolve(c.records[i]), nil
}

// Query returns the active search text.
func (c *Controller) Query() string {
	return c.query
}

// SetQuery replaces the search text. The current page is left as is; Paged
// clamps it against the new result size.
func (c *Controller) SetQuery(text string) {
	c.query = text
	c.logger.Debug().
		Str("operation", "set_query").
		Str("query", text).
		Msg("query changed")
}

// SetSort orders the filtered view by field; "" restores collection order.
func (c *Controller) SetSort(field, order string) error {
	if err := c.sorter.Validate(field); err != nil {
		return err
	}
	if order == "" {
		order = pagination.SortOrderAsc
	}
	if order != pagination.SortOrderAsc && order != pagination.SortOrderDesc {
		return fmt.Errorf("%w: got %q", pagination.ErrInvalidSortOrder, order)
	}
	c.sortField, c.sortOrder = field, order
	return nil
}

// Sort returns the active sort field and order.
func (c *Controller) Sort() (field, order string) {
	return c.sortField, c.sortOrder
}

// SortFields returns every field the view can be sorted by.
func (c *Controller) SortFields() []string {
	return c.sorter.GetValidFields()
}

// Filtered returns every record matching the query, with derived fields
// resolved. Without a sort the result keeps collection order.
func (c *Controller) Filtered() []Record {
	resolved := c.Records()
	filtered := Filter(resolved, c.query, c.schema.SearchFields())
	if c.sortField != "" {
		filtered = c.sorter.Sort(filtered, c.sortField, c.sortOrder)
	}
	return filtered
}

// Page returns the current page number, clamped to the current result size.
func (c *Controller) Page() int {
	total := pagination.TotalPages(len(c.Filtered()), c.pageSize)
	return pagination.ClampPage(c.page, total)
}

// Paged returns the rows of the current page with its metadata. The stored
// page is clamped against the filtered count computed now, so a stale page
// left behind by a query change or deletion still renders in range.
func (c *Controller) Paged() Page {
	filtered := c.Filtered()
	meta := pagination.NewMeta(c.page, c.pageSize, len(filtered))
	return Page{
		Meta:  meta,
		Rows:  pagination.Slice(filtered, meta.CurrentPage, c.pageSize),
		Links: pagination.Window(meta.CurrentPage, meta.TotalPages, c.windowSize),
		Query: c.query,
	}
}

// GoToPage moves to page n, clamped to [1, totalPages] for the current
// result size, and returns the page now active.
func (c *Controller) GoToPage(n int) int {
	total := pagination.TotalPages(len(c.Filtered()), c.pageSize)
	c.page = pagination.ClampPage(n, total)
	c.logger.Debug().
		Str("operation", "go_to_page").
		Int("requested", n).
		Int("page", c.page).
		Int("total_pages", total).
		Msg("page changed")
	return c.page
}

// NextPage moves one page forward, stopping at the last page.
func (c *Controller) NextPage() int {
	return c.GoToPage(c.Page() + 1)
}

// PreviousPage moves one page back, stopping at the first page.
func (c *Controller) PreviousPage() int {
	return c.GoToPage(c.Page() - 1)
}

// Add validates raw form input and appends a new record. Every required
// field must be non-empty and every numeric field must parse; otherwise a
// *ValidationError lists each bad field and nothing changes. The page is
// not changed.
func (c *Controller) Add(input map[string]string) (Record, error) {
	fields, verr := c.parseInput(input)
	if verr != nil {
		c.notifyValidation(verr)
		c.logger.Debug().
			Str("operation", "add").
			Err(verr).
			Msg("record rejected")
		return Record{}, verr
	}

	id := c.ids.NextID(c.records)
	if c.indexOf(id) >= 0 {
		err := fmt.Errorf("%w: %q", ErrDuplicateID, id)
		c.notify(fmt.Sprintf("%s not added", c.schema.Singular),
			fmt.Sprintf("Id %s is already in use.", id), notify.SeverityError)
		c.logger.Warn().
			Str("operation", "add").
			Str("id", id).
			Err(err).
			Msg("id generator returned an id already in use")
		return Record{}, err
	}

	rec := NewRecord(id, fields)
	c.records = append(c.records, rec)
	resolved := c.schema.Resolve(rec)

	c.notify(fmt.Sprintf("%s added", c.schema.Singular),
		fmt.Sprintf("%s has been added successfully.", c.schema.Title(resolved)), notify.SeveritySuccess)
	c.logger.Debug().
		Str("operation", "add").
		Str("id", id).
		Int("count", len(c.records)).
		Msg("record added")

	return resolved, nil
}

// parseInput converts create-form text into typed fields, collecting every
// missing or malformed field.
func (c *Controller) parseInput(input map[string]string) (map[string]any, *ValidationError) {
	fields := make(map[string]any, len(c.schema.Fields))
	var problems []FieldError

	for _, f := range c.schema.InputFields() {
		text := strings.TrimSpace(input[f.Name])
		if text == "" {
			switch {
			case f.Required:
				problems = append(problems, FieldError{Field: f.Name, Reason: ReasonRequired})
			case f.Default != nil:
				fields[f.Name] = f.Default()
			}
			continue
		}
		v, err := f.Parse(text)
		if err != nil {
			problems = append(problems, fieldErrorFrom(f.Name, err))
			continue
		}
		fields[f.Name] = v
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}
	return fields, nil
}

// Delete removes the record with id and returns it. An unknown id returns
// *NotFoundError and leaves the collection unchanged. The page is not
// changed.
func (c *Controller) Delete(id string) (Record, error) {
	i := c.indexOf(id)
	if i < 0 {
		err := &NotFoundError{ID: id}
		c.notify(fmt.Sprintf("%s not found", c.schema.Singular),
			fmt.Sprintf("No %s with id %s.", strings.ToLower(c.schema.Singular), id), notify.SeverityError)
		return Record{}, err
	}

	removed := c.schema.Resolve(c.records[i])
	c.records = slices.Delete(slices.Clone(c.records), i, i+1)

	c.notify(fmt.Sprintf("%s deleted", c.schema.Singular),
		fmt.Sprintf("%s has been removed.", c.schema.Title(removed)), notify.SeveritySuccess)
	c.logger.Debug().
		Str("operation", "delete").
		Str("id", id).
		Int("count", len(c.records)).
		Msg("record deleted")

	return removed, nil
}

// UpdateField replaces one stored field of the record with id, parsing value
// according to the schema. The record is replaced structurally; earlier
// copies handed out by Records or Paged are unaffected.
func (c *Controller) UpdateField(id, field, value string) (Record, error) {
	i := c.indexOf(id)
	if i < 0 {
		c.notify(fmt.Sprintf("%s not found", c.schema.Singular),
			fmt.Sprintf("No %s with id %s.", strings.ToLower(c.schema.Singular), id), notify.SeverityError)
		return Record{}, &NotFoundError{ID: id}
	}

	v, verr := c.parseUpdate(field, value)
	if verr != nil {
		c.notify("Invalid input", verr.Error(), notify.SeverityError)
		return Record{}, verr
	}

	updated := c.records[i].With(field, v)
	next := slices.Clone(c.records)
	next[i] = updated
	c.records = next

	resolved := c.schema.Resolve(updated)
	label := field
	if f, ok := c.schema.Field(field); ok && f.Label != "" {
		label = f.Label
	}
	c.notify(fmt.Sprintf("%s updated", c.schema.Singular),
		fmt.Sprintf("%s of %s has been updated.", label, c.schema.Title(resolved)), notify.SeveritySuccess)
	c.logger.Debug().
		Str("operation", "update").
		Str("id", id).
		Str("field", field).
		Msg("record updated")

	return resolved, nil
}

// parseUpdate validates a single-field update.
func (c *Controller) parseUpdate(field, value string) (any, *ValidationError) {
	if field == IDField {
		return nil, &ValidationError{Fields: []FieldError{{Field: field, Reason: ReasonReadOnly}}}
	}
	f, ok := c.schema.Field(field)
	if !ok {
		return nil, &ValidationError{Fields: []FieldError{{Field: field, Reason: ReasonUnknownField}}}
	}
	if f.IsDerived() {
		return nil, &ValidationError{Fields: []FieldError{{Field: field, Reason: ReasonReadOnly}}}
	}
	if f.Required && strings.TrimSpace(value) == "" {
		return nil, &ValidationError{Fields: []FieldError{{Field: field, Reason: ReasonRequired}}}
	}
	v, err := f.Parse(value)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{fieldErrorFrom(field, err)}}
	}
	return v, nil
}

func (c *Controller) indexOf(id string) int {
	return slices.IndexFunc(c.records, func(r Record) bool { return r.ID() == id })
}

func (c *Controller) notify(title, description string, severity notify.Severity) {
	c.notifier.Notify(notify.Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		Time:        c.now(),
	})
}

// notifyValidation reports a rejected create the way the add dialog does:
// missing fields win over malformed numbers.
func (c *Controller) notifyValidation(verr *ValidationError) {
	if len(verr.MissingFields()) > 0 {
		c.notify("Missing information", "Please fill in all fields.", notify.SeverityError)
		return
	}
	c.notify("Invalid input", numericFieldsSentence(c.schema.NumericFields())+" must be valid numbers.",
		notify.SeverityError)
}

// numericFieldsSentence joins field labels as "Price and stock" or
// "Price, stock and weight".
func numericFieldsSentence(fields []Field) string {
	labels := make([]string, 0, len(fields))
	for i, f := range fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		if i > 0 {
			label = strings.ToLower(label)
		}
		labels = append(labels, label)
	}
	switch len(labels) {
	case 0:
		return "Values"
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
	}
}

func fieldErrorFrom(field string, err error) FieldError {
	if fe, ok := err.(*FieldError); ok {
		return *fe
	}
	return FieldError{Field: field, Reason: err.Error()}
}
