package imgbuf

import "github.com/dtorop/rawspeed/internal/errkind"

// ErrInvalidParameter indicates degenerate geometry passed to a Buffer
// constructor or region operation.
var ErrInvalidParameter = errkind.ErrInvalidParameter
