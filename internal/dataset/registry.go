package dataset

import (
	"fmt"
	"sort"

	"github.com/rshade/adminboard/internal/listctl"
)

// Entity pairs a schema with its sample collection.
type Entity struct {
	Schema func() *listctl.Schema
	Seed   func() []listctl.Record
}

//nolint:gochecknoglobals // Fixed table of known entities.
var entities = map[string]Entity{
	"users":    {Schema: Users, Seed: SampleUsers},
	"products": {Schema: Products, Seed: SampleProducts},
}

// Lookup returns the entity registered under name.
func Lookup(name string) (Entity, error) {
	e, ok := entities[name]
	if !ok {
		return Entity{}, fmt.Errorf("unknown entity %q (valid: %v)", name, Names())
	}
	return e, nil
}

// Names returns the registered entity names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entities))
	for n := range entities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
