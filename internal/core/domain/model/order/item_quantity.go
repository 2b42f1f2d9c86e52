package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemQuantityIsNotConstructed is returned when an ItemQuantity was not
// created through the NewItemQuantity constructor.
var ErrItemQuantityIsNotConstructed = errors.New("ItemQuantity must be created via NewItemQuantity constructor")

// ItemQuantity is a value object pairing a food item name with the quantity
// the user asked for. It is immutable once constructed.
//
// Invariants:
//   - Name is non-empty
//   - Quantity is at least 1; there is no upper bound, the value passes
//     through from the user's utterance
type ItemQuantity struct { //nolint:recvcheck //using for validation
	name     string
	quantity int

	guard guard.ConstructorGuard
}

// NewItemQuantity creates an ItemQuantity, validating that the name is
// present and the quantity is at least 1.
func NewItemQuantity(name string, quantity int) (ItemQuantity, error) {
	iq := ItemQuantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		iq.setName(name),
		iq.setQuantity(quantity),
	); err != nil {
		return ItemQuantity{}, err
	}

	return iq, nil
}

// Validate ensures the value was created through the constructor.
func (iq ItemQuantity) Validate() error {
	return iq.guard.Validate(ErrItemQuantityIsNotConstructed)
}

// Name returns the food item name.
func (iq ItemQuantity) Name() string {
	return iq.name
}

// Quantity returns the requested quantity.
func (iq ItemQuantity) Quantity() int {
	return iq.quantity
}

// String renders the line the way replies enumerate it, e.g. "2 Pizza".
func (iq ItemQuantity) String() string {
	return fmt.Sprintf("%d %s", iq.quantity, iq.name)
}

func (iq *ItemQuantity) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	iq.name = name
	return nil
}

func (iq *ItemQuantity) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}

	iq.quantity = quantity
	return nil
}
