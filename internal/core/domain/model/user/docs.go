// Package user holds the identity-side value objects the core reads: the Role
// enumeration and the resolved Identity of a request. Account signup, signin,
// and session issuance belong to the external identity provider; this package
// only models what the marketplace needs to authorize operations.
package user
