// Package errs provides standardized error types for the dental lab service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not allowed
//   - ValueIsOutOfRangeError: a value falls outside its accepted bounds
//   - ObjectNotFoundError: a referenced record cannot be found
//   - VersionIsInvalidError: a write raced another writer on the same row
//   - NothingCommittedError: a commit reported zero affected rows
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them onto status codes.
package errs
