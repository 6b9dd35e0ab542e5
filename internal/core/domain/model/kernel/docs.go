// Package kernel provides the value objects shared by the order and stage
// aggregates of the dental lab domain.
//
// The package includes:
//   - Money: a non-negative decimal amount used for prices and order totals
//   - InvoiceID: the deterministic, human-readable order identifier
//   - ValidateID: the common "ids start at 1" rule
package kernel
