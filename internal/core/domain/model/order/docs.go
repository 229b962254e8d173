// Package order models a submitted pickup order.
//
// The package includes:
//   - Order: the aggregate root holding the header (user, vendor, pickup time,
//     total, notes, status) and its line items
//   - Line: an ordered item with the unit price captured at submission time
//   - Status: the lifecycle state and its allowed transitions
//
// Key business rules:
//   - A new order is always pending
//   - The total of a new order is the sum of its lines
//   - Line prices are copied at submission and never follow later catalog changes
//   - Only a pending order can be cancelled
package order
