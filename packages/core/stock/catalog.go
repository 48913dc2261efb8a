package stock

import (
	"quarry/packages/core/catalog"
	"sync"
)

type Property string

// Canonical names of the filterable properties.
const (
	IdProperty                Property = "Id"
	NameProperty              Property = "Name"
	CategoryProperty          Property = "Category"
	PriceProperty             Property = "Price"
	QuantityProperty          Property = "Quantity"
	AvailableQuantityProperty Property = "AvailableQuantity"
	DescriptionProperty       Property = "Description"
	CreatedOnProperty         Property = "CreatedOn"
	CreatedByIdProperty       Property = "CreatedById"
	ModifiedOnProperty        Property = "ModifiedOn"
	ModifiedByIdProperty      Property = "ModifiedById"
	DisabledProperty          Property = "Disabled"
	EnableDisabledProperty    Property = "EnableDisabled"
)

func column(p Property, kind catalog.Kind, storage string, get func(*Item) any) catalog.Column[Item] {
	return catalog.Column[Item]{
		Descriptor: catalog.Descriptor{
			Name:    string(p),
			Kind:    kind,
			Storage: storage,
		},
		Get: get,
	}
}

func nullable(c catalog.Column[Item]) catalog.Column[Item] {
	c.Nullable = true
	return c
}

func int64OrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Catalog of the stock item properties, created on first call.
var Catalog = sync.OnceValue(func() *catalog.Catalog[Item] {
	return catalog.MustNew(
		column(IdProperty, catalog.Int64, "id", func(i *Item) any { return i.ID }),
		column(NameProperty, catalog.String, "name", func(i *Item) any { return i.Name }),
		column(CategoryProperty, catalog.Int32, "category", func(i *Item) any { return int32(i.Category) }),
		column(PriceProperty, catalog.Decimal, "price", func(i *Item) any { return i.Price }),
		column(QuantityProperty, catalog.Int64, "quantity", func(i *Item) any { return i.Quantity }),
		column(AvailableQuantityProperty, catalog.Int64, "available_quantity", func(i *Item) any { return i.AvailableQuantity }),
		nullable(column(DescriptionProperty, catalog.String, "description", func(i *Item) any {
			if i.Description == nil {
				return nil
			}
			return *i.Description
		})),
		column(CreatedOnProperty, catalog.Time, "created_on", func(i *Item) any { return i.CreatedOn }),
		nullable(column(CreatedByIdProperty, catalog.Int64, "created_by_id", func(i *Item) any { return int64OrNil(i.CreatedByID) })),
		column(ModifiedOnProperty, catalog.Time, "modified_on", func(i *Item) any { return i.ModifiedOn }),
		nullable(column(ModifiedByIdProperty, catalog.Int64, "modified_by_id", func(i *Item) any { return int64OrNil(i.ModifiedByID) })),
		column(DisabledProperty, catalog.Bool, "disabled", func(i *Item) any { return i.Disabled }),
		column(EnableDisabledProperty, catalog.Time, "enable_disabled", func(i *Item) any { return i.EnableDisabled }),
	)
})

// Server-side filters of the stock item search.
// Disabled items are hidden unless client explicitly filters by Disabled.
var DefaultFilters = map[string]string{
	string(DisabledProperty): "eq:false",
}
