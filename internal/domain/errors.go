package domain

import "errors"

var (
	// ErrServiceNotFound signals a missing catalog service.
	ErrServiceNotFound = errors.New("service not found")
	// ErrCatalogUnavailable signals that the catalog store could not be reached.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrInvalidService signals a service record that failed ingestion validation.
	ErrInvalidService = errors.New("invalid service")
)
