package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// pixelRule2 turns two consecutive input bytes into one u16 sample; it
// backs the two-byte unpacked decoders in this package except
// Raw16_LE_Unpacked, which has its own row loop for its bulk-copy path.
type pixelRule2 func(g0, g1 byte) uint16

func decodeUnpacked2Byte(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer, rule pixelRule2) (int, error) {
	bytesPerRow := 2 * w
	actualH, err := truncationPreamble(cur, bytesPerRow, h, buf)
	if err != nil {
		return 0, err
	}
	cpp := buf.ComponentsPerPixel()
	for row := 0; row < actualH; row++ {
		g, err := cur.Consume(bytesPerRow)
		if err != nil {
			return 0, fmt.Errorf("packing: unpacked row %d: %w", row, err)
		}
		dst := buf.RowU16(oy + row)
		for x := 0; x < w; x++ {
			dst[(ox+x)*cpp] = rule(g[2*x], g[2*x+1])
		}
	}
	return actualH, nil
}

func decodeRaw12BEUnpacked(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	if err := requireMinWidth(w); err != nil {
		return 0, err
	}
	return decodeUnpacked2Byte(cur, ox, oy, w, h, buf, func(g0, g1 byte) uint16 {
		return uint16(g0&0x0F)<<8 | uint16(g1)
	})
}

func decodeRaw12BEUnpackedLeftAligned(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	if err := requireMinWidth(w); err != nil {
		return 0, err
	}
	return decodeUnpacked2Byte(cur, ox, oy, w, h, buf, func(g0, g1 byte) uint16 {
		return (uint16(g0)<<8 | uint16(g1&0xF0)) >> 4
	})
}

func decodeRaw12LEUnpacked(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	if err := requireMinWidth(w); err != nil {
		return 0, err
	}
	return decodeUnpacked2Byte(cur, ox, oy, w, h, buf, func(g0, g1 byte) uint16 {
		return (uint16(g1)<<8 | uint16(g0)) >> 4
	})
}
