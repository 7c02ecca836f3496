package roster

import "errors"

// ErrConfiguration is returned when the roster source is missing or not
// valid JSON. A present file without a names field is not an error; it
// yields an empty roster.
var ErrConfiguration = errors.New("roster source is missing or malformed")
