// Package errs provides standardized error types shared across the
// application. Each error type follows the same pattern: a sentinel error
// for classification with errors.Is, a struct carrying details, constructors
// with and without a cause, and Error/Unwrap methods.
//
// The types cover the failure classes the order service reports:
//   - ObjectNotFoundError: a referenced record does not exist
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsRequiredError: a required value is missing
//   - ConcurrencyConflictError: a conditional write lost to a competing writer
//
// Domain-outcome errors with business meaning (invalid transition, forbidden
// actor, already-claimed order) live next to the order model instead; this
// package is for the mechanical failure classes every layer shares.
package errs
