// Package guard decides whether a caller may act on a stored todo.
package guard

import (
	"todos/shared/failure"
)

type Decision int

const (
	NotFound Decision = iota
	Forbidden
	Allowed
)

func (d Decision) String() string {
	switch d {
	case NotFound:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case Allowed:
		return "allowed"
	default:
		return "unknown"
	}
}

const (
	MessageNotFound  = "Todo does not exist"
	MessageForbidden = "Not authorized"
)

// Check applies existence before ownership: a missing item is NotFound for
// every caller, and Forbidden is only returned for items that exist.
func Check(storedOwnerID, callerID string, exists bool) Decision {
	if !exists {
		return NotFound
	}

	if storedOwnerID != callerID {
		return Forbidden
	}

	return Allowed
}

// Err converts a decision into the failure returned to the caller, nil when allowed.
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case Forbidden:
		return failure.Forbidden(MessageForbidden)
	default:
		return failure.NotFound(MessageNotFound)
	}
}
