// Package services contains stateless domain services operating on aggregates
// passed by the application layer:
//
//   - Authorize: the role authorization guard applied before every operation
//   - CartPricer: validates a requested cart against the catalog and snapshots prices
//   - TransitionPolicy: decides who may move an order between statuses,
//     including the delivery claim rule
//
// None of these touch storage; repositories stay behind the application layer.
package services
