package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// decodeRaw8 widens one byte per pixel to u16, passing each byte through
// the buffer's lookup curve unless it is disabled.
func decodeRaw8(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer, randState *uint32) (int, error) {
	bytesPerRow := w
	actualH, err := truncationPreamble(cur, bytesPerRow, h, buf)
	if err != nil {
		return 0, err
	}
	for row := 0; row < actualH; row++ {
		g, err := cur.Consume(bytesPerRow)
		if err != nil {
			return 0, fmt.Errorf("packing: raw8 row %d: %w", row, err)
		}
		for x := 0; x < w; x++ {
			buf.SetWithLookup(ox+x, oy+row, 0, g[x], randState)
		}
	}
	return actualH, nil
}
