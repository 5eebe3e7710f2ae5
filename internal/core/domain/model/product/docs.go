// Package product contains the Product aggregate: a vendor's catalog item
// with a non-negative price and a non-negative stock counter. Stock only
// shrinks through DecrementStock during order creation; catalog edits by
// vendors go through the same constructors and keep the invariants.
package product
