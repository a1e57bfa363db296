package rawspeed

import "github.com/dtorop/rawspeed/internal/errkind"

// Kind classifies why a decode failed, so callers can branch on the
// reason without matching error message text.
type Kind = errkind.Kind

const (
	Truncated           = errkind.Truncated
	InvalidParameter    = errkind.InvalidParameter
	UnsupportedBitDepth = errkind.UnsupportedBitDepth
	IOError             = errkind.IOError
	InternalError       = errkind.InternalError
)

// Sentinel errors suitable as errors.Is targets against any error this
// package returns.
var (
	ErrTruncated           = errkind.ErrTruncated
	ErrInvalidParameter    = errkind.ErrInvalidParameter
	ErrUnsupportedBitDepth = errkind.ErrUnsupportedBitDepth
	ErrIOError             = errkind.ErrIOError
	ErrInternalError       = errkind.ErrInternalError
)

// ClassifyError reports the Kind of a fatal error returned by Decode.
func ClassifyError(err error) Kind {
	return errkind.KindOf(err)
}
