package cycles

import (
	"errors"
	"fmt"
)

// DirectionError reports an invalid direction argument to Generate.
//
// Direction is always derived via DirectionFor, so this error is
// unreachable through the public helper; Generate still validates because
// a raw integer crosses its boundary.
type DirectionError struct {
	Got int
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction must be +1 (forward) or -1 (backward), got %d", e.Got)
}

// IsDirectionError reports whether err is a DirectionError, unwrapping as
// needed.
func IsDirectionError(err error) bool {
	var de *DirectionError
	return errors.As(err, &de)
}
