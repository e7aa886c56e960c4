package services

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnavailable wraps transport failures (DNS, refused, aborted).
	ErrCatalogUnavailable = errors.New("catalog api unavailable")
	// ErrMalformedPayload is returned when a 2xx body has no products field.
	ErrMalformedPayload = errors.New("catalog api returned malformed payload")
)

// StatusError is returned for any non-2xx catalog response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog api responded with status %d", e.Code)
}
