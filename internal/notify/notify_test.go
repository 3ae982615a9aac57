package notify

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r Recorder

	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Title: "Product added", Severity: SeveritySuccess})
	r.Notify(Notification{Title: "Missing information", Severity: SeverityError})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Product added", all[0].Title)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "Missing information", last.Title)

	r.Reset()
	assert.Empty(t, r.All())
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	sink := Multi(&a, nil, &b)

	sink.Notify(Notification{Title: "User updated"})

	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	NewLogSink(logger).Notify(Notification{
		Title:       "Invalid input",
		Description: "Price and stock must be valid numbers.",
		Severity:    SeverityError,
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "Price and stock must be valid numbers.")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Notify(Notification{Title: "ignored"}) })
}
