package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/adminboard/internal/dataset"
)

func TestSampleUsers(t *testing.T) {
	users := dataset.SampleUsers()
	require.Len(t, users, 12)

	managers := 0
	for _, u := range users {
		if u.Text("role") == "Manager" {
			managers++
		}
		assert.NotEmpty(t, u.Text("email"))
	}
	assert.Equal(t, 3, managers)
	assert.Equal(t, "John Doe", users[0].Text("name"))
}

func TestSampleProducts_Status(t *testing.T) {
	schema := dataset.Products()
	want := map[string]string{
		"1": dataset.InStock,
		"6": dataset.OutOfStock,
		"9": dataset.LowStock,
	}

	products := dataset.SampleProducts()
	require.Len(t, products, 10)
	for _, p := range products {
		_, stored := p.Get("status")
		assert.False(t, stored, "status must not be stored")
		if status, ok := want[p.ID()]; ok {
			assert.Equal(t, status, schema.Resolve(p).Text("status"))
		}
	}
}

func TestStockStatus(t *testing.T) {
	tests := []struct {
		stock int
		want  string
	}{
		{-5, dataset.OutOfStock},
		{0, dataset.OutOfStock},
		{1, dataset.LowStock},
		{9, dataset.LowStock},
		{10, dataset.InStock},
		{124, dataset.InStock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dataset.StockStatus(tt.stock), "stock %d", tt.stock)
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"products", "users"}, dataset.Names())

	e, err := dataset.Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, "User", e.Schema().Singular)
	assert.Len(t, e.Seed(), 12)

	_, err = dataset.Lookup("orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity")
}
