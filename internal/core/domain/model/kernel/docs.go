// Package kernel provides the value objects shared by every aggregate of the
// pickup ordering core.
//
// The package includes:
//   - UUID: identifier of users, vendors, catalog items and orders
//   - TimeOfDay: a wall-clock minute within a day, used for serving windows and pickup slots
//
// Both are immutable; their zero values are invalid and are rejected by Validate.
package kernel
