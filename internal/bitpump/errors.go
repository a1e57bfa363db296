package bitpump

import "github.com/dtorop/rawspeed/internal/errkind"

// ErrInternal indicates a caller requested more bits than the pump's
// word size permits — a contract violation, not a data error.
var ErrInternal = errkind.ErrInternalError
