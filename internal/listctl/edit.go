package listctl

// EditBuffer is the single pending inline edit of one cell.
type EditBuffer struct {
	RecordID string `json:"record_id" yaml:"record_id"`
	Field    string `json:"field"     yaml:"field"`
	Value    string `json:"value"     yaml:"value"`
}

// Editing returns the pending edit, or nil when no cell is being edited.
// The returned value is a copy.
func (c *Controller) Editing() *EditBuffer {
	if c.edit == nil {
		return nil
	}
	b := *c.edit
	return &b
}

// BeginEdit starts editing field of record id with currentValue. Any edit
// already in progress is discarded without being applied.
func (c *Controller) BeginEdit(id, field, currentValue string) {
	if c.edit != nil {
		c.logger.Debug().
			Str("operation", "begin_edit").
			Str("id", c.edit.RecordID).
			Str("field", c.edit.Field).
			Msg("discarding pending edit")
	}
	c.edit = &EditBuffer{RecordID: id, Field: field, Value: currentValue}
}

// ChangeEditValue replaces the pending value. It does nothing when no edit
// is active.
func (c *Controller) ChangeEditValue(text string) {
	if c.edit == nil {
		return
	}
	c.edit.Value = text
}

// CommitEdit applies the pending value through UpdateField. The buffer is
// cleared whether or not the update succeeds.
func (c *Controller) CommitEdit() (Record, error) {
	if c.edit == nil {
		return Record{}, ErrNoActiveEdit
	}
	b := *c.edit
	c.edit = nil
	return c.UpdateField(b.RecordID, b.Field, b.Value)
}

// CancelEdit drops the pending edit without touching the collection.
func (c *Controller) CancelEdit() {
	c.edit = nil
}
