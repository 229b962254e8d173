// Package services provides domain services that do not belong to a single
// aggregate of the pickup ordering core.
//
// The package includes:
//   - TimeSlotGenerator: produces the pickup times a customer can still choose
//     for a given moment, from the vendor serving window
//
// Services here are pure: they never read the wall clock or touch storage.
// The caller passes "now" explicitly, which keeps slot generation deterministic
// under test.
package services
