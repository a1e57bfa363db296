package cursor

import (
	"github.com/dtorop/rawspeed/internal/errkind"
)

// ErrTruncated indicates a read or skip requested more bytes than were
// left in the cursor. It is the same sentinel errkind.ErrTruncated
// classifies, so callers can test with errors.Is against either name.
var ErrTruncated = errkind.ErrTruncated

// ErrOutOfRange indicates a Sub window was not fully contained in the
// cursor's remaining bytes — a caller-side geometry mistake, classified
// as InvalidParameter.
var ErrOutOfRange = errkind.ErrInvalidParameter
