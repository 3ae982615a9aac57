package dataset

import (
	"github.com/rshade/adminboard/internal/listctl"
)

// Product stock statuses.
const (
	InStock    = "In Stock"
	LowStock   = "Low Stock"
	OutOfStock = "Out of Stock"
)

// LowStockThreshold is the stock level below which a product is Low Stock.
const LowStockThreshold = 10

// StockStatus maps a stock count to its status badge.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return OutOfStock
	case stock < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// Products returns the schema of the Products page. The status field is
// derived from stock on every read.
func Products() *listctl.Schema {
	return &listctl.Schema{
		Name:       "products",
		Singular:   "Product",
		TitleField: "name",
		Fields: []listctl.Field{
			{Name: "name", Label: "Name", Required: true, Searchable: true, Editable: true},
			{Name: "category", Label: "Category", Required: true, Searchable: true, Editable: true},
			{
				Name:     "price",
				Label:    "Price",
				Kind:     listctl.KindDecimal,
				Required: true,
				Editable: true,
			},
			{
				Name:     "stock",
				Label:    "Stock",
				Kind:     listctl.KindInteger,
				Required: true,
				Editable: true,
			},
			{
				Name:  "status",
				Label: "Status",
				Derive: func(r listctl.Record) any {
					n, _ := r.Number("stock")
					return StockStatus(int(n))
				},
			},
		},
	}
}

// SampleProducts returns the ten products the Products page starts with.
func SampleProducts() []listctl.Record {
	rows := []struct {
		id, name, category string
		price              float64
		stock              int
	}{
		{"1", "Premium Wireless Headphones", "Electronics", 199.99, 45},
		{"2", "Ergonomic Office Chair", "Furniture", 249.99, 18},
		{"3", "Stainless Steel Water Bottle", "Kitchen", 24.95, 86},
		{"4", "Organic Cotton T-Shirt", "Clothing", 29.99, 124},
		{"5", "Smart Home Security Camera", "Electronics", 149.99, 32},
		{"6", "Bluetooth Portable Speaker", "Electronics", 79.99, 0},
		{"7", "Professional Knife Set", "Kitchen", 199.95, 14},
		{"8", "Leather Wallet", "Accessories", 59.99, 67},
		{"9", "Smartwatch", "Electronics", 299.99, 8},
		{"10", "Yoga Mat", "Fitness", 39.99, 54},
	}
	out := make([]listctl.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, listctl.NewRecord(r.id, map[string]any{
			"name":     r.name,
			"category": r.category,
			"price":    r.price,
			"stock":    r.stock,
		}))
	}
	return out
}
