package di

import "strconv"

// MissingRegistrationError is returned when resolution is requested for a key
// with no registered entry.
//
// Resolution never falls back to a zero value or a default entry: a missing
// key always surfaces as this error (or as a panic carrying it, for the
// Must* forms).
type MissingRegistrationError struct{ Key string }

// Error implements the error interface.
func (e MissingRegistrationError) Error() string {
	// Example: di: no registration for key "config.Store"
	return "di: no registration for key " + strconv.Quote(e.Key)
}

// TypeMismatchError is returned when an entry exists at the key but was
// registered for a different value type than the one requested.
//
// This can only happen with explicit keys or generics misuse, because
// derived keys already encode the registered type. Want is the canonical
// name of the requested type, Got the name captured at registration.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	// Example: di: key "painter" registered as *di.Brush, requested di.Painter
	return "di: key " + strconv.Quote(e.Key) +
		" registered as " + e.Got + ", requested " + e.Want
}
