// Package item provides the Item aggregate: the catalog entry and stock
// ledger for a sellable product.
//
// The package includes:
//   - Item: the aggregate root holding name, price, and the stock counter
//   - Kind: a tagged variant discriminating Book, Album, and Movie items
//
// Key business rules:
//   - Stock never goes negative; Reserve fails with ErrInsufficientStock
//     instead of partially decrementing
//   - Release restocks unconditionally, with no upper bound
//   - Stock is mutated only through Reserve/Release (plus the administrative
//     Restock); callers never assign the counter directly
//
// Per-item serialization of concurrent reservations is the responsibility of
// the enclosing unit of work, which loads items with row-level locks.
package item
