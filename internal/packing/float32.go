package packing

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// decodeFloat32 copies little-endian 32-bit float samples directly into
// the buffer's float storage, one component at a time.
func decodeFloat32(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	cpp := buf.ComponentsPerPixel()
	bytesPerRow := 4 * w * cpp
	actualH, err := truncationPreamble(cur, bytesPerRow, h, buf)
	if err != nil {
		return 0, err
	}
	for row := 0; row < actualH; row++ {
		g, err := cur.Consume(bytesPerRow)
		if err != nil {
			return 0, fmt.Errorf("packing: float32 row %d: %w", row, err)
		}
		dst := buf.RowF32(oy + row)
		base := ox * cpp
		for i := 0; i < w*cpp; i++ {
			dst[base+i] = math.Float32frombits(binary.LittleEndian.Uint32(g[4*i:]))
		}
	}
	return actualH, nil
}
