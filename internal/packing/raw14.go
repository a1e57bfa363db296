package packing

import (
	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

func decodeRaw14BEUnpacked(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	return decodeUnpacked2Byte(cur, ox, oy, w, h, buf, func(g0, g1 byte) uint16 {
		return uint16(g0&0x3F)<<8 | uint16(g1)
	})
}
