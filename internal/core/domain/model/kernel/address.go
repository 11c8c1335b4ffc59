package kernel

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrCityIsRequired is returned when an address is created without a city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrStreetIsRequired is returned when an address is created without a street.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrZipcodeIsRequired is returned when an address is created without a zipcode.
	ErrZipcodeIsRequired = errs.NewValueIsRequiredError("zipcode")
	// ErrAddressIsNotConstructed is returned when using an Address that was not
	// created via NewAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
)

// Address is a value object describing a postal address. It is used both as
// a member's home address and as the destination of a delivery. Once created
// it is immutable; a changed address is a new Address value.
type Address struct {
	city    string
	street  string
	zipcode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. All three parts are required; construction
// fails with the combined set of violations otherwise.
func NewAddress(city, street, zipcode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setCity(city),
		address.setStreet(street),
		address.setZipcode(zipcode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the address was created through NewAddress. A zero-value
// Address fails validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipcode == other.zipcode
}

// City returns the city part of the address.
func (a Address) City() string {
	return a.city
}

// Street returns the street part of the address.
func (a Address) Street() string {
	return a.street
}

// Zipcode returns the postal code part of the address.
func (a Address) Zipcode() string {
	return a.zipcode
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	if zipcode == "" {
		return ErrZipcodeIsRequired
	}
	a.zipcode = zipcode
	return nil
}
