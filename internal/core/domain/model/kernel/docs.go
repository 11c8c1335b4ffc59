// Package kernel provides core domain primitives shared by every model
// package in the shop.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Address: a postal address value object used by members and deliveries
//
// Both primitives are immutable, construction-validated, and safe for
// concurrent use. They enforce that domain objects always hold identifiers
// and addresses in a valid state.
package kernel
