package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a provider-reported failure carrying the upstream HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("provider returned status %d", e.Status)
}

// IsNotFound reports whether err is a provider 404 for a missing record.
func IsNotFound(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Status == http.StatusNotFound
}
