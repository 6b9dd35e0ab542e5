// Package order provides the Order aggregate of the dental lab: an order for
// one patient, placed by a dental clinic, made of tooth-product items.
//
// The package includes:
//   - Order: the aggregate root with amounts, invoice id and lifecycle
//   - Item: one product line owned by an order
//   - Status: New -> Producing -> Completed, with Canceled reachable from every other state
//   - Mode and Gender: closed enums persisted through explicit string tables
//
// Key business rules:
//   - finalAmount = totalAmount - discount, computed once when the order is created
//   - teethQuantity is the number of items submitted with the order
//   - the invoice id is derived from the clinic id and the storage-assigned order id
//   - Canceled is final; a Completed order can only be canceled
package order
