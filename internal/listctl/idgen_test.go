package listctl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(ids ...string) []Record {
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, NewRecord(id, nil))
	}
	return out
}

func TestNewIDGenerator(t *testing.T) {
	tests := []struct {
		strategy string
		want     IDGenerator
		wantErr  bool
	}{
		{"", &SequenceGenerator{}, false},
		{IDStrategySequence, &SequenceGenerator{}, false},
		{IDStrategyCount, CountGenerator{}, false},
		{IDStrategyULID, ULIDGenerator{}, false},
		{IDStrategyUUID, UUIDGenerator{}, false},
		{"random", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			got, err := NewIDGenerator(tt.strategy)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown id strategy")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := &SequenceGenerator{}

	assert.Equal(t, "1", g.NextID(nil))
	assert.Equal(t, "8", g.NextID(records("3", "7", "x")))
	// The counter does not fall back when the collection shrinks.
	assert.Equal(t, "9", g.NextID(records("1")))
}

func TestCountGenerator(t *testing.T) {
	g := CountGenerator{}
	assert.Equal(t, "1", g.NextID(nil))
	assert.Equal(t, "3", g.NextID(records("1", "3")))
}

func TestRandomGenerators(t *testing.T) {
	id := ULIDGenerator{}.NextID(nil)
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)

	id = UUIDGenerator{}.NextID(nil)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
}
