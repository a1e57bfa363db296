package packing

import (
	"fmt"
	"unsafe"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// hostIsLittleEndian is computed once at init and gates the Raw16_LE
// bulk-copy fast path: on little-endian hosts, a native uint16's byte
// layout already matches the sensor's little-endian samples.
var hostIsLittleEndian = func() bool {
	var probe uint16 = 1
	return *(*byte)(unsafe.Pointer(&probe)) == 1
}()

func decodeRaw16BEUnpacked(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	return decodeUnpacked2Byte(cur, ox, oy, w, h, buf, func(g0, g1 byte) uint16 {
		return uint16(g0)<<8 | uint16(g1)
	})
}

// raw16LEPortablePixel is the byte-order-independent fallback rule,
// used both directly and as the equivalence reference for the fast
// path below.
func raw16LEPortablePixel(g0, g1 byte) uint16 {
	return uint16(g1)<<8 | uint16(g0)
}

// raw16LEFastCopyRow reinterprets w little-endian 16-bit samples as a
// native uint16 row without a per-pixel shift-and-or, valid only on
// little-endian hosts. It must produce output identical to calling
// raw16LEPortablePixel over the same bytes.
func raw16LEFastCopyRow(dst []uint16, g []byte) {
	dstBytes := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(g))
	copy(dstBytes, g)
}

// decodeRaw16LEUnpacked decodes 16-bit little-endian samples. On a
// little-endian host with single-component pixels it takes the bulk
// memcpy shortcut the format allows (spec: "equivalently, on
// little-endian hosts, a memcpy of the row"); the portable fallback
// below must and does produce bit-identical output (see
// TestRaw16LEFastPathMatchesPortable).
func decodeRaw16LEUnpacked(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	bytesPerRow := 2 * w
	actualH, err := truncationPreamble(cur, bytesPerRow, h, buf)
	if err != nil {
		return 0, err
	}
	cpp := buf.ComponentsPerPixel()
	for row := 0; row < actualH; row++ {
		g, err := cur.Consume(bytesPerRow)
		if err != nil {
			return 0, fmt.Errorf("packing: raw16 le row %d: %w", row, err)
		}
		dst := buf.RowU16(oy + row)
		if hostIsLittleEndian && cpp == 1 {
			raw16LEFastCopyRow(dst[ox:ox+w], g)
			continue
		}
		for x := 0; x < w; x++ {
			dst[(ox+x)*cpp] = raw16LEPortablePixel(g[2*x], g[2*x+1])
		}
	}
	return actualH, nil
}
