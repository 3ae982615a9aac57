package listctl

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Id strategy names accepted by NewIDGenerator.
const (
	IDStrategySequence = "sequence"
	IDStrategyCount    = "count"
	IDStrategyULID     = "ulid"
	IDStrategyUUID     = "uuid"
)

// IDGenerator assigns ids to new records.
type IDGenerator interface {
	// NextID returns an id for a record about to be appended to collection.
	NextID(collection []Record) string
}

// Observer is implemented by generators that track ids already issued. The
// controller hands them the seed collection at construction.
type Observer interface {
	Observe(collection []Record)
}

// NewIDGenerator returns the generator for a strategy name. The empty name
// selects the sequence strategy.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategySequence:
		return &SequenceGenerator{}, nil
	case IDStrategyCount:
		return CountGenerator{}, nil
	case IDStrategyULID:
		return ULIDGenerator{}, nil
	case IDStrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (valid: %s, %s, %s, %s)",
			strategy, IDStrategySequence, IDStrategyCount, IDStrategyULID, IDStrategyUUID)
	}
}

// SequenceGenerator issues increasing integer ids. The counter starts above
// the largest numeric id it has seen and never moves backwards, so ids freed
// by deletions are not reissued.
type SequenceGenerator struct {
	last int
}

// Observe raises the counter to the largest numeric id in collection.
func (g *SequenceGenerator) Observe(collection []Record) {
	for _, r := range collection {
		if n, err := strconv.Atoi(r.ID()); err == nil && n > g.last {
			g.last = n
		}
	}
}

// NextID returns the next integer id.
func (g *SequenceGenerator) NextID(collection []Record) string {
	g.Observe(collection)
	g.last++
	return strconv.Itoa(g.last)
}

// CountGenerator reproduces the dashboard's original "size + 1" ids. After a
// deletion it can return an id that is still in use; the controller rejects
// such ids with ErrDuplicateID instead of inserting a duplicate.
type CountGenerator struct{}

// NextID returns len(collection)+1.
func (CountGenerator) NextID(collection []Record) string {
	return strconv.Itoa(len(collection) + 1)
}

// ULIDGenerator issues time-ordered ULIDs.
type ULIDGenerator struct{}

// NextID returns a new ULID string.
func (ULIDGenerator) NextID([]Record) string {
	return ulid.Make().String()
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NextID returns a new UUID string.
func (UUIDGenerator) NextID([]Record) string {
	return uuid.NewString()
}
