// Package errs provides the typed errors shared by the pickup ordering core.
//
// Every error kind follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// Kinds:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier matched nothing
package errs
