// Package stage provides the production stage entities of an order item.
//
// The package includes:
//   - Stage: one step of an item's production sequence (design, milling, finishing...)
//   - Template: the category-level definition a Stage is created from
//   - Sequence: the ordered stages of one item, indexed by their position
//
// Key business rules:
//   - Stages of an item are numbered 1..K in template order
//   - Every stage starts Pending with no operator assigned
//   - endDate is set only when a stage is Completed
//
// Whether a transition is allowed is decided by the services package; Stage
// itself only records what was applied.
package stage
