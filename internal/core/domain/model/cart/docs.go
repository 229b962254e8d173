// Package cart implements the in-progress order a user assembles before checkout.
//
// The package includes:
//   - Cart: the mutable, session-owned cart state machine
//   - Item: the catalog projection handed to Cart.AddItem
//   - Line: an item with its quantity
//   - Snapshot: an immutable copy of a cart consumed by checkout and display
//
// Key business rules:
//   - All lines of a non-empty cart belong to one vendor
//   - Adding an item of another vendor replaces the whole cart with that single item
//   - A line quantity is always at least 1; updating it to 0 or less removes the line
//   - An empty cart has no vendor
//   - TotalItems and TotalPrice are always computed from the lines, never stored
//
// None of the Cart operations fail: invalid input is ignored. A Cart is owned by
// exactly one session and does no locking of its own.
package cart
