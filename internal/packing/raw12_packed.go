package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// decodeRaw12Packed implements Raw12_LE_Packed, Raw12_BE_Packed and their
// Ctrl10 siblings: two 12-bit samples packed into three bytes, with an
// odd trailing pixel packed into the leading two bytes of what would
// have been the next triple. ctrl10 vendors interleave one skipped
// control byte after every 10th pixel plus one at the end of the row.
func decodeRaw12Packed(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer, be, ctrl10 bool) (int, error) {
	if err := requireMinWidth(w); err != nil {
		return 0, err
	}
	bytesPerRow := ceilDiv(w*12, 8)
	if ctrl10 {
		bytesPerRow += ceilDiv(w+2, 10)
	}
	actualH, err := truncationPreamble(cur, bytesPerRow, h, buf)
	if err != nil {
		return 0, err
	}

	cpp := buf.ComponentsPerPixel()
	for row := 0; row < actualH; row++ {
		dst := buf.RowU16(oy + row)
		for x := 0; x < w; x += 2 {
			if x+1 < w {
				g, err := cur.Consume(3)
				if err != nil {
					return 0, fmt.Errorf("packing: raw12 packed row %d: %w", row, err)
				}
				if be {
					dst[(ox+x)*cpp] = uint16(g[0])<<4 | uint16(g[1])>>4
					dst[(ox+x+1)*cpp] = uint16(g[1]&0x0F)<<8 | uint16(g[2])
				} else {
					dst[(ox+x)*cpp] = uint16(g[0]) | uint16(g[1]&0x0F)<<8
					dst[(ox+x+1)*cpp] = uint16(g[1])>>4 | uint16(g[2])<<4
				}
			} else {
				g, err := cur.Consume(2)
				if err != nil {
					return 0, fmt.Errorf("packing: raw12 packed row %d: %w", row, err)
				}
				if be {
					dst[(ox+x)*cpp] = uint16(g[0])<<4 | uint16(g[1])>>4
				} else {
					dst[(ox+x)*cpp] = uint16(g[0]) | uint16(g[1]&0x0F)<<8
				}
			}
			if ctrl10 && x%10 == 8 {
				if _, err := cur.Consume(1); err != nil {
					return 0, fmt.Errorf("packing: raw12 packed control byte row %d: %w", row, err)
				}
			}
		}
		if ctrl10 {
			if _, err := cur.Consume(1); err != nil {
				return 0, fmt.Errorf("packing: raw12 packed trailing control byte row %d: %w", row, err)
			}
		}
	}
	return actualH, nil
}
