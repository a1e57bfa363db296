package packing

import (
	"fmt"

	"github.com/dtorop/rawspeed/internal/cursor"
	"github.com/dtorop/rawspeed/internal/errkind"
	"github.com/dtorop/rawspeed/internal/imgbuf"
)

// maxInterlacedDim bounds the field arithmetic below; the source this
// format is grounded on leaves giant-sensor behavior undefined, so this
// decoder rejects it explicitly instead (spec §9 Open Questions).
const maxInterlacedDim = 1 << 20

// decodeRaw12BEInterlaced decodes a 12-bit big-endian packing split
// across two sequential fields. Field 0 holds the even output rows and
// gets ceil(h/2) of them, field 1 the odd ones with floor(h/2); field 1
// begins at an offset rounded up to the next 2048-byte boundary from
// field 0's byte size. h need not be even — an odd h just leaves field
// 1 one row short of field 0, matching RawDecoder.cpp's `half = (h+1)
// >> 1` field split.
func decodeRaw12BEInterlaced(cur *cursor.Cursor, ox, oy, w, h int, buf *imgbuf.Buffer) (int, error) {
	if err := requireMinWidth(w); err != nil {
		return 0, err
	}
	if w%2 != 0 {
		return 0, fmt.Errorf("packing: raw12 be interlaced width %d is odd: %w", w, errkind.ErrInvalidParameter)
	}
	if w > maxInterlacedDim || h > maxInterlacedDim {
		return 0, fmt.Errorf("packing: raw12 be interlaced dimensions too large: %w", errkind.ErrInvalidParameter)
	}

	bytesPerFieldRow := w * 12 / 8
	actualH, err := truncationPreamble(cur, bytesPerFieldRow, h, buf)
	if err != nil {
		return 0, err
	}

	half0 := (actualH + 1) / 2
	half1 := actualH / 2
	fieldBytes0 := half0 * bytesPerFieldRow
	fieldBytes1 := half1 * bytesPerFieldRow
	field2Offset := ((fieldBytes0>>11)+1) << 11

	field0, err := cur.Sub(0, fieldBytes0)
	if err != nil {
		return 0, fmt.Errorf("packing: raw12 be interlaced field 0: %w", err)
	}
	field1, err := cur.Sub(field2Offset, fieldBytes1)
	if err != nil {
		return 0, fmt.Errorf("packing: raw12 be interlaced field 1: %w", err)
	}

	cpp := buf.ComponentsPerPixel()
	decodeField := func(field *cursor.Cursor, rows, fieldIndex int) error {
		for pos := 0; pos < rows; pos++ {
			g, err := field.Consume(bytesPerFieldRow)
			if err != nil {
				return fmt.Errorf("packing: raw12 be interlaced field %d row %d: %w", fieldIndex, pos, err)
			}
			yOut := pos*2 + fieldIndex
			dst := buf.RowU16(oy + yOut)
			for x := 0; x+1 < w; x += 2 {
				dst[(ox+x)*cpp] = uint16(g[0])<<4 | uint16(g[1])>>4
				dst[(ox+x+1)*cpp] = uint16(g[1]&0x0F)<<8 | uint16(g[2])
				g = g[3:]
			}
		}
		return nil
	}

	if err := decodeField(field0, half0, 0); err != nil {
		return 0, err
	}
	if err := decodeField(field1, half1, 1); err != nil {
		return 0, err
	}
	return actualH, nil
}
