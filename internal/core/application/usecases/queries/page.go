// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read database rows directly
// into read models tailored to the API surface.
package queries

const (
	// defaultPageSize is used when a query does not specify a limit.
	defaultPageSize = 50

	// maxPageSize caps the page size a caller may request.
	maxPageSize = 200
)

// clampLimit applies the page size defaults and cap.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
