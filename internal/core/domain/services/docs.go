// Package services provides domain services that coordinate orders and their
// production stages. It implements the workflows that span more than one
// aggregate.
//
// The package includes:
//   - StageFanOut: instantiates the stages of every item when an order starts producing
//   - StageProgression: the sequential gate for stage status changes
//   - OrderProgression: the order status state machine with its outcome notes
//   - CompletionPolicy: selects how strictly completions are gated
//
// Gate decisions are reported as a Decision (Applied, Unchanged or Rejected
// plus a note), never as an error. Errors are reserved for invalid input.
package services
