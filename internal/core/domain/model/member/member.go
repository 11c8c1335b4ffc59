package member

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a member is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMemberIsNotConstructed is returned when using an improperly
	// initialized Member.
	ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember or RestoreMember constructor")
)

// Member is a registered customer who places orders.
//
// A member holds a derived view of the identifiers of the orders placed by
// them. The view is a back-reference kept in sync by the order aggregate at
// placement time; the authoritative side of the relationship is the order,
// which holds the member reference.
type Member struct {
	// id is the unique identifier for the member
	id kernel.UUID

	// name is the member's display name; unique across the shop
	name string

	// address is the member's home address, used as the default delivery
	// destination
	address kernel.Address

	// orderIDs is the derived back-reference view of the member's orders
	orderIDs []kernel.UUID

	// guard ensures the member was created via a constructor
	guard guard.ConstructorGuard
}

// NewMember creates a Member with validation.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	member := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		member.setID(id),
		member.setName(name),
		member.setAddress(address),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// RestoreMember reconstructs a Member from persistence, including the
// derived order back-references.
func RestoreMember(id kernel.UUID, name string, address kernel.Address, orderIDs []kernel.UUID) (*Member, error) {
	member, err := NewMember(id, name, address)
	if err != nil {
		return nil, err
	}

	member.orderIDs = append(member.orderIDs, orderIDs...)
	return member, nil
}

// Validate ensures the Member instance was properly constructed.
func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

// IsEqual compares two members by their unique identifiers.
func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *Member) ID() kernel.UUID {
	return m.id
}

// Name returns the member's display name.
func (m *Member) Name() string {
	return m.name
}

// Address returns the member's home address.
func (m *Member) Address() kernel.Address {
	return m.address
}

// OrderIDs returns the derived view of the member's order identifiers.
func (m *Member) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(m.orderIDs))
	copy(out, m.orderIDs)
	return out
}

// HasOrder reports whether the derived view contains the given order.
func (m *Member) HasOrder(orderID kernel.UUID) bool {
	for _, id := range m.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AttachOrder adds an order to the member's derived view. It is a wiring
// primitive invoked by the order aggregate during construction, not part of
// the member's external contract; both sides of the member-order link are
// updated within that single construction step.
func (m *Member) AttachOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if m.HasOrder(orderID) {
		return nil
	}

	m.orderIDs = append(m.orderIDs, orderID)
	return nil
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
