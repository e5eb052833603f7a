package entities

import (
	"fmt"
	"strings"
)

// Validate checks the rules an order must satisfy before it is persisted.
func (o Order) Validate() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for i, it := range o.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return fmt.Errorf("%w: item %d has no product", ErrInvalidOrder, i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be at least 1", ErrInvalidOrder, i)
		}
		if it.Price.IsNegative() {
			return fmt.Errorf("%w: item %d price must not be negative", ErrInvalidOrder, i)
		}
	}
	if o.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: negative total", ErrInvalidOrder)
	}
	if !o.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOrder, o.PaymentMethod)
	}

	a := o.ShippingAddress
	for name, v := range map[string]string{
		"street": a.Street, "city": a.City, "state": a.State, "zipCode": a.ZipCode, "country": a.Country,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: shipping address %s is required", ErrInvalidOrder, name)
		}
	}

	hasCustomer := o.CustomerID != ""
	hasGuest := o.Guest != nil
	switch {
	case hasCustomer && hasGuest:
		return fmt.Errorf("%w: customer and guest info are mutually exclusive", ErrInvalidOrder)
	case !hasCustomer && !hasGuest:
		return fmt.Errorf("%w: customer or guest info is required", ErrInvalidOrder)
	case hasGuest && (o.Guest.Name == "" || o.Guest.Email == "" || o.Guest.Phone == ""):
		return fmt.Errorf("%w: guest name, email and phone are required", ErrInvalidOrder)
	}
	return nil
}
