package demo

import (
	"fmt"

	"github.com/dmitrymomot/valtree/pkg/validator"
)

// MaxOrderTotal caps the sum of all line totals.
const MaxOrderTotal = 10000.0

// Order is a purchase with its line items.
type Order struct {
	ID         string     `json:"id" yaml:"id" toml:"id"`
	Customer   string     `json:"customer" yaml:"customer" toml:"customer"`
	Status     string     `json:"status" yaml:"status" toml:"status"`
	Items      []LineItem `json:"items" yaml:"items" toml:"items"`
	Shipping   *Address   `json:"shipping,omitempty" yaml:"shipping,omitempty" toml:"shipping,omitempty"`
	Discount   float64    `json:"discount" yaml:"discount" toml:"discount"`
	Dimensions [3]float64 `json:"dimensions" yaml:"dimensions" toml:"dimensions"`
	Notes      *string    `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
}

var sameSKU = validator.UniqueItemsFunc(func(a, b LineItem) bool { return a.SKU == b.SKU }).WithLocalized("")

var totalWithinLimit = validator.Custom(func(o Order) error {
	if total := o.Total(); total > MaxOrderTotal {
		return localizedError(MsgOrderTotal,
			fmt.Sprintf("the order total %.2f exceeds %.2f", total, MaxOrderTotal),
			"total", fmt.Sprintf("%.2f", total), "limit", fmt.Sprintf("%.2f", MaxOrderTotal))
	}
	return nil
})

// Total sums quantity times unit price over all items.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// Validate implements validator.Validatable.
func (o Order) Validate() error {
	return validator.NewObject().
		Field("id", validator.Value(o.ID, uuidRule)).
		Field("customer", validator.Compose(o.Customer,
			validator.Each(minLength(1)),
			validator.Each(emailPattern),
		)).
		Field("status", validator.Value(o.Status, statuses)).
		Field("items", validator.Slice(o.Items,
			validator.Nested[LineItem],
			validator.MinItems[LineItem](1).WithLocalized(""),
			validator.MaxItems[LineItem](50).WithLocalized(""),
			sameSKU,
		)).
		Field("shipping", validator.Optional(o.Shipping, validator.Nested[Address])).
		Field("discount", validator.Value(o.Discount,
			validator.Range(validator.Inclusive(0.0), validator.Exclusive(100.0)).WithLocalized(MsgRange),
			validator.MultipleOf(0.5).WithLocalized(""),
		)).
		Field("dimensions", validator.Slice(o.Dimensions[:],
			validator.Each(validator.ExclusiveMinimum(0.0).WithLocalized("")))).
		Field("notes", validator.Optional(o.Notes, validator.Each(maxLength(500)))).
		Check(validator.Apply(o, totalWithinLimit)).
		Err()
}

// LineItem is one product line of an Order. Quantities must come in whole packs.
type LineItem struct {
	SKU       string  `json:"sku" yaml:"sku" toml:"sku"`
	Quantity  int     `json:"quantity" yaml:"quantity" toml:"quantity"`
	PackSize  int     `json:"pack_size,omitempty" yaml:"pack_size,omitempty" toml:"pack_size,omitempty"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price" toml:"unit_price"`
}

// Validate implements validator.Validatable.
func (li LineItem) Validate() error {
	quantity := []validator.Checker[int]{between(1, 999)}
	if li.PackSize > 1 {
		quantity = append(quantity, validator.MultipleOf(li.PackSize).WithLocalized(""))
	}
	return validator.NewObject().
		Field("sku", validator.Value(li.SKU, skuPattern)).
		Field("quantity", validator.Value(li.Quantity, quantity...)).
		Field("pack_size", validator.Value(li.PackSize, validator.Minimum(0).WithLocalized(""))).
		Field("unit_price", validator.Value(li.UnitPrice, validator.ExclusiveMinimum(0.0).WithLocalized(""))).
		Err()
}
