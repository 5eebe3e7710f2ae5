// Package order contains the Order aggregate and its supporting value
// objects: the Item line with its price snapshot and the Status state
// machine. Orders are created exactly once with a fixed total; afterwards
// only the status and the delivery-person assignment may change, and the
// assignment only as part of a claim.
package order
