package pons

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoHits means the API answered 200 but the hit list was empty.
var ErrNoHits = errors.New("search returned no hits")

// LookupError is a dictionary request that came back with a non-200
// status. Reason is the documented meaning of that status.
type LookupError struct {
	Status int
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("dictionary lookup failed with status %d: %s", e.Status, e.Reason)
}

// UnsupportedResultError is a hit whose kind the bot cannot resolve,
// e.g. a translation result instead of a dictionary entry.
type UnsupportedResultError struct {
	Kind string
}

func (e *UnsupportedResultError) Error() string {
	return fmt.Sprintf("unsupported result kind %q: only dictionary entries can be resolved", e.Kind)
}

// ReasonForStatus maps an API status code to the reason the dictionary
// documents for it. Unknown codes get the catch-all reason.
func ReasonForStatus(status int) string {
	switch status {
	case http.StatusOK:
		return "Request successful"
	case http.StatusNoContent:
		return "No results could be found for the given word"
	case http.StatusForbidden:
		return "Supplied credentials could not be verified, or access to dictionary denied"
	case http.StatusNotFound:
		return "The dictionary does not exist"
	case http.StatusInternalServerError:
		return "A server error has occurred"
	default:
		return "Unknown error (sorry)"
	}
}
