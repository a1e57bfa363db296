package packing

import "github.com/dtorop/rawspeed/internal/errkind"

// Sentinel aliases so callers can classify a packing decode failure with
// errors.Is without depending on internal/errkind directly.
var (
	ErrInvalidParameter    = errkind.ErrInvalidParameter
	ErrTruncated           = errkind.ErrTruncated
	ErrUnsupportedBitDepth = errkind.ErrUnsupportedBitDepth
)
