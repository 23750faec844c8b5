package coverage

import "fmt"

// MalformedRecordError reports a record that failed validation during
// Load. Load is all-or-nothing: one malformed record rejects the whole
// batch and no model is produced.
type MalformedRecordError struct {
	Path   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: %s", e.Path, e.Reason)
}

// UnitNotFoundError reports a lookup for a path the model does not hold.
type UnitNotFoundError struct {
	Path string
}

func (e *UnitNotFoundError) Error() string {
	return fmt.Sprintf("unit not found: %q", e.Path)
}
