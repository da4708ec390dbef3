// Package errs provides standardized error types for the dine-in ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced table, order, or menu does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or semantically inconsistent
//   - ValueIsOutOfRangeError: a numeric value violates its bounds
//   - InvalidStateError: an operation is not legal in the entity's current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error kind
//
// Transport layers map the sentinels to their surface: ErrObjectNotFound to a
// not-found response, ErrValueIsInvalid/ErrValueIsRequired to a bad-request
// response, and ErrInvalidState to a conflict response.
package errs
