package fipe

import "errors"

// Failure taxonomy of the catalog and pricing services. Callers match with errors.Is.
var (
	// ErrCatalogUnavailable covers network failures and non-2xx responses.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrVehicleNotFound means the taxonomy path resolved but the catalog has no
	// attributes for the final identity.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrPeriodLookupFailed means the price query for one reference period failed.
	ErrPeriodLookupFailed = errors.New("period lookup failed")
)
