package target

import (
	"fmt"
	"strings"
)

// UnknownTargetError is returned when a chipset id is not in the catalog.
// Decoding cannot start without a profile, so callers treat it as fatal.
type UnknownTargetError struct {
	// ID is the chipset id that was requested
	ID string
	// Available lists the ids the catalog does know
	Available []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %s (known targets: %s)", e.ID, formatIDList(e.Available))
}

func formatIDList(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}
